package discovery

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"

	"github.com/sameercsai/ai-learning-hub/articles"
)

// DefaultFeeds are the AI news feeds read on every run.
var DefaultFeeds = []string{
	"https://techcrunch.com/category/artificial-intelligence/feed/",
	"https://www.marktechpost.com/feed/",
	"https://feeds.feedburner.com/venturebeat/SZYF",
}

// MaxFeedEntries caps how many entries are taken from the top of each feed.
const MaxFeedEntries = 20

// FeedFetcher reads a fixed list of RSS or Atom feeds.
type FeedFetcher struct {
	urls    []string
	timeout time.Duration
	parser  *gofeed.Parser
}

// NewFeedFetcher creates a fetcher for urls. A non-positive timeout falls
// back to 30 seconds per feed.
func NewFeedFetcher(urls []string, timeout time.Duration) *FeedFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}

	return &FeedFetcher{
		urls:    urls,
		timeout: timeout,
		parser:  parser,
	}
}

// Fetch reads every feed in order. Each feed yields its own result, so a
// broken feed never hides the others.
func (f *FeedFetcher) Fetch(ctx context.Context) []FetchResult {
	results := make([]FetchResult, 0, len(f.urls))
	for _, url := range f.urls {
		results = append(results, f.fetchFeed(ctx, url))
	}
	return results
}

func (f *FeedFetcher) fetchFeed(ctx context.Context, url string) FetchResult {
	fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(url, fetchCtx)
	if err != nil {
		return failed(url, fmt.Errorf("failed to parse feed: %w", err))
	}

	return FetchResult{
		Source:   url,
		Articles: FeedToArticles(feed, MaxFeedEntries),
	}
}

// FeedItemToArticle converts an RSS or Atom item. gofeed normalizes RSS
// <description> and Atom <summary> into Description, and keeps the raw
// published string alongside the parsed one; the raw string is stored.
func FeedItemToArticle(item *gofeed.Item, feedTitle string) articles.Article {
	source := feedTitle
	if source == "" {
		source = "RSS"
	}

	return articles.Article{
		Title:       item.Title,
		Description: item.Description,
		URL:         item.Link,
		PublishedAt: item.Published,
		Source:      source,
	}
}

// FeedToArticles converts at most limit items from the top of the feed.
func FeedToArticles(feed *gofeed.Feed, limit int) []articles.Article {
	return lo.Map(lo.Slice(feed.Items, 0, limit), func(item *gofeed.Item, _ int) articles.Article {
		return FeedItemToArticle(item, feed.Title)
	})
}
