package config

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConfigResponse is the effective configuration with secrets masked.
type ConfigResponse struct {
	*Config
	Lookback string `json:"lookback"`
	// Path of the config file consulted, whether or not it exists
	ConfigFile string `json:"config_file,omitempty"`
	// Which optional features are switched on
	Features map[string]bool `json:"features"`
}

// RegisterRoutes mounts GET /config on group. The handler reports the
// configuration the process started with; it is read-only.
func RegisterRoutes(group *gin.RouterGroup, cfg *Config) {
	group.GET("/config", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, NewConfigResponse(cfg))
	})
}

// NewConfigResponse builds the masked view of cfg.
func NewConfigResponse(cfg *Config) ConfigResponse {
	return ConfigResponse{
		Config:     cfg.Redacted(),
		Lookback:   cfg.Lookback.String(),
		ConfigFile: ConfigFilePath(),
		Features: map[string]bool{
			"news_api":       cfg.NewsAPIKey != "",
			"mailchimp":      cfg.MailchimpAPIKey != "" && cfg.MailchimpListID != "",
			"smtp_preview":   cfg.SMTPHost != "" && cfg.PreviewTo != "",
			"postgres_store": cfg.DBDriver == "postgres" || cfg.DBDriver == "postgresql",
		},
	}
}
