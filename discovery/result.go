package discovery

import (
	"github.com/sameercsai/ai-learning-hub/articles"
)

// FetchResult is what one source contributed to a run. A failed source
// carries the reason in Err and no articles, so callers can tell an empty
// source from an unavailable one.
type FetchResult struct {
	Source   string
	Articles []articles.Article
	Err      error
}

// OK reports whether the source was fetched without error.
func (r FetchResult) OK() bool {
	return r.Err == nil
}

func failed(source string, err error) FetchResult {
	return FetchResult{Source: source, Err: err}
}
