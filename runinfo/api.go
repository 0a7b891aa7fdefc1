package runinfo

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the latest run records on group:
// GET /runs/extraction and GET /runs/content.
func RegisterRoutes(group *gin.RouterGroup, summaryPath, metadataPath string) {
	group.GET("/runs/extraction", func(c *gin.Context) {
		var summary ExtractionSummary
		serveRecord(c, summaryPath, &summary)
	})
	group.GET("/runs/content", func(c *gin.Context) {
		var metadata ContentMetadata
		serveRecord(c, metadataPath, &metadata)
	})
}

func serveRecord(c *gin.Context, path string, v any) {
	if err := Read(path, v); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "message": "No run recorded yet"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "internal_error", "message": "Failed to read run record"}})
		return
	}

	c.JSON(http.StatusOK, v)
}
