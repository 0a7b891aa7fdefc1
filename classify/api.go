package classify

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sameercsai/ai-learning-hub/articles"
)

// ArticleLister is the read side of the article store.
type ArticleLister interface {
	All(ctx context.Context) ([]articles.Article, error)
}

// IndustrySummary is one entry of the classification response.
type IndustrySummary struct {
	Industry string `json:"industry"`
	Count    int    `json:"count"`
}

// ClassificationResponse represents the response for GET
// /api/v1/classification.
type ClassificationResponse struct {
	Products   []articles.Article `json:"products"`
	Industries []IndustrySummary  `json:"industries"`
}

// RegisterRoutes mounts the classification endpoint on group.
func RegisterRoutes(group *gin.RouterGroup, store ArticleLister, taxonomy Taxonomy) {
	group.GET("/classification", func(c *gin.Context) {
		items, err := store.All(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse("internal_error", "Failed to read articles"))
			return
		}

		c.JSON(http.StatusOK, NewClassificationResponse(taxonomy.Classify(items)))
	})
}

// errorResponse creates a standardized error response.
func errorResponse(code, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}

// NewClassificationResponse summarizes result with per-industry counts.
func NewClassificationResponse(result Result) ClassificationResponse {
	resp := ClassificationResponse{
		Products:   result.Products,
		Industries: []IndustrySummary{},
	}
	if resp.Products == nil {
		resp.Products = []articles.Article{}
	}
	for _, b := range result.Industries {
		resp.Industries = append(resp.Industries, IndustrySummary{
			Industry: b.Industry,
			Count:    len(b.Articles),
		})
	}
	return resp
}
