package discovery

import (
	"github.com/samber/lo"

	"github.com/sameercsai/ai-learning-hub/articles"
)

// Dedupe drops articles without a url and keeps the first article seen for
// each url, preserving encounter order.
func Dedupe(items []articles.Article) []articles.Article {
	withURL := lo.Filter(items, func(a articles.Article, _ int) bool {
		return a.URL != ""
	})

	return lo.UniqBy(withURL, func(a articles.Article) string {
		return a.URL
	})
}

// Merge concatenates the articles of every result in order.
func Merge(results ...FetchResult) []articles.Article {
	return lo.FlatMap(results, func(r FetchResult, _ int) []articles.Article {
		return r.Articles
	})
}
