// Package classify sorts stored articles into product announcements and
// industry use cases with plain keyword matching.
package classify

import (
	"strings"

	"github.com/samber/lo"

	"github.com/sameercsai/ai-learning-hub/articles"
)

// Industry is a labelled keyword group. An article belongs to the industry
// when its text contains any of the keywords.
type Industry struct {
	Name     string
	Keywords []string
}

// Taxonomy holds the keyword tables used by Classify. It is passed by value
// so tests can substitute their own tables.
type Taxonomy struct {
	ProductKeywords []string
	MinProductHits  int
	Industries      []Industry
}

// DefaultTaxonomy returns the product keywords and the industry table the
// hub publishes with.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		ProductKeywords: []string{"launch", "release", "announce", "unveil", "introduce"},
		MinProductHits:  2,
		Industries: []Industry{
			{Name: "Healthcare", Keywords: []string{"healthcare", "medical", "hospital"}},
			{Name: "Finance", Keywords: []string{"finance", "banking", "trading"}},
			{Name: "Education", Keywords: []string{"education", "learning", "student"}},
			{Name: "Retail", Keywords: []string{"retail", "ecommerce", "shopping"}},
		},
	}
}

// Bucket is the list of articles matched by one industry.
type Bucket struct {
	Industry string
	Articles []articles.Article
}

// Result is the outcome of one classification pass. Industries follows the
// taxonomy's industry order and only contains industries with at least one
// match.
type Result struct {
	Products   []articles.Article
	Industries []Bucket
}

// Text returns the lower-cased text keywords are matched against.
func Text(a articles.Article) string {
	return strings.ToLower(a.Title + " " + a.Description)
}

// ProductHits counts the distinct product keywords found in text.
func (t Taxonomy) ProductHits(text string) int {
	return lo.CountBy(lo.Uniq(t.ProductKeywords), func(kw string) bool {
		return strings.Contains(text, kw)
	})
}

// IsProduct reports whether text reads like a product announcement.
func (t Taxonomy) IsProduct(text string) bool {
	return t.ProductHits(text) >= t.MinProductHits
}

// MatchIndustries returns the names of every industry whose keywords appear
// in text, in taxonomy order.
func (t Taxonomy) MatchIndustries(text string) []string {
	matched := lo.Filter(t.Industries, func(ind Industry, _ int) bool {
		return lo.SomeBy(ind.Keywords, func(kw string) bool {
			return strings.Contains(text, kw)
		})
	})
	return lo.Map(matched, func(ind Industry, _ int) string { return ind.Name })
}

// Classify runs the product and industry passes over items. The two passes
// are independent: a product may also land in any number of industries.
func (t Taxonomy) Classify(items []articles.Article) Result {
	var products []articles.Article
	buckets := make(map[string][]articles.Article, len(t.Industries))

	for _, item := range items {
		text := Text(item)

		if t.IsProduct(text) {
			products = append(products, item)
		}

		for _, name := range t.MatchIndustries(text) {
			buckets[name] = append(buckets[name], item)
		}
	}

	result := Result{Products: products}
	for _, ind := range t.Industries {
		if matched, ok := buckets[ind.Name]; ok {
			result.Industries = append(result.Industries, Bucket{
				Industry: ind.Name,
				Articles: matched,
			})
		}
	}

	return result
}
