package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sameercsai/ai-learning-hub/articles"
	"github.com/sameercsai/ai-learning-hub/classify"
)

var renderTime = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// Test helper: n products titled "Product 1".."Product n"
func sampleProducts(n int) []articles.Article {
	items := make([]articles.Article, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, articles.Article{
			ID:     int64(i),
			Title:  fmt.Sprintf("Product %d", i),
			URL:    fmt.Sprintf("https://example.com/p/%d", i),
			Source: "TechCrunch",
		})
	}
	return items
}

func parse(t *testing.T, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

// TestWebsite_CapsProducts verifies only the first 12 products are shown
func TestWebsite_CapsProducts(t *testing.T) {
	r := NewRenderer(DefaultBranding())

	html, err := r.Website(classify.Result{Products: sampleProducts(15)}, renderTime)
	require.NoError(t, err)

	cards := parse(t, html).Find("#products .card")
	require.Equal(t, 12, cards.Length())
	assert.Equal(t, "Product 1", cards.First().Find("h3").Text())
	assert.Equal(t, "Product 12", cards.Last().Find("h3").Text())
	href, _ := cards.First().Find("a").Attr("href")
	assert.Equal(t, "https://example.com/p/1", href)
}

// TestWebsite_Industries verifies order, counts and the cap of 10
func TestWebsite_Industries(t *testing.T) {
	r := NewRenderer(DefaultBranding())

	var buckets []classify.Bucket
	for i := 1; i <= 11; i++ {
		buckets = append(buckets, classify.Bucket{
			Industry: fmt.Sprintf("Industry %d", i),
			Articles: sampleProducts(i),
		})
	}

	html, err := r.Website(classify.Result{Industries: buckets}, renderTime)
	require.NoError(t, err)

	cards := parse(t, html).Find("#industries .card")
	require.Equal(t, 10, cards.Length())
	assert.Equal(t, "Industry 1", cards.First().Find("h3").Text())
	assert.Equal(t, "1 use cases", cards.First().Find("p").Text())
	assert.Equal(t, "Industry 10", cards.Last().Find("h3").Text())
	assert.Equal(t, "10 use cases", cards.Last().Find("p").Text())
}

// TestWebsite_Header verifies the branding header and date
func TestWebsite_Header(t *testing.T) {
	r := NewRenderer(DefaultBranding())

	html, err := r.Website(classify.Result{}, renderTime)
	require.NoError(t, err)

	doc := parse(t, html)
	assert.Equal(t, "🤖 Cognitive Sprints", doc.Find(".header h1").Text())
	assert.Contains(t, doc.Find(".header").Text(), "AI Learning & Innovation Hub")
	assert.Contains(t, doc.Find(".header").Text(), "Updated: May 01, 2024")
	assert.Contains(t, html, "linear-gradient(135deg, #667eea, #764ba2)")
	assert.Contains(t, html, "© 2024 Cognitive Sprints")
}

// TestWebsite_TruncatesTitles verifies titles are cut at 80 characters
func TestWebsite_TruncatesTitles(t *testing.T) {
	r := NewRenderer(DefaultBranding())
	long := strings.Repeat("é", 100)

	html, err := r.Website(classify.Result{Products: []articles.Article{
		{Title: long, URL: "https://example.com/x", Source: "S"},
	}}, renderTime)
	require.NoError(t, err)

	title := parse(t, html).Find("#products .card h3").Text()
	assert.Equal(t, strings.Repeat("é", 80), title)
}

// TestWebsite_EscapesMarkup verifies article fields cannot inject markup
func TestWebsite_EscapesMarkup(t *testing.T) {
	r := NewRenderer(DefaultBranding())

	html, err := r.Website(classify.Result{Products: []articles.Article{
		{Title: "<script>alert(1)</script>", URL: "javascript:alert(1)", Source: "<b>x</b>"},
	}}, renderTime)
	require.NoError(t, err)

	doc := parse(t, html)
	assert.Equal(t, 0, doc.Find("script").Length(), "title must not become a script element")
	assert.Equal(t, 0, doc.Find("#products b").Length())
	href, _ := doc.Find("#products .card a").Attr("href")
	assert.NotContains(t, href, "javascript:")
}

// TestNewsletter_TopFive verifies the numbered top-5 list in input order
func TestNewsletter_TopFive(t *testing.T) {
	r := NewRenderer(DefaultBranding())

	html, err := r.Newsletter(classify.Result{Products: sampleProducts(15)}, renderTime)
	require.NoError(t, err)

	doc := parse(t, html)
	items := doc.Find(".product strong")
	require.Equal(t, 5, items.Length())
	items.Each(func(i int, s *goquery.Selection) {
		assert.Equal(t, fmt.Sprintf("%d. Product %d", i+1, i+1), s.Text())
	})

	cta, ok := doc.Find("a.cta").Attr("href")
	require.True(t, ok)
	assert.Equal(t, "https://sameer-ai-hub.netlify.app", cta)
	assert.Contains(t, doc.Find("h1").Text(), "Cognitive Sprints")
	assert.Contains(t, html, "May 01, 2024")
}

// TestNewsletter_FewerThanFive verifies short product lists render as-is
func TestNewsletter_FewerThanFive(t *testing.T) {
	r := NewRenderer(DefaultBranding())

	html, err := r.Newsletter(classify.Result{Products: sampleProducts(2)}, renderTime)
	require.NoError(t, err)

	assert.Equal(t, 2, parse(t, html).Find(".product").Length())
}

// TestTruncate verifies rune-aware truncation
func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 80))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "日本", Truncate("日本語", 2))
}
