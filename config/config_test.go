package config

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var configEnvKeys = []string{
	"NEWS_API_KEY", "MAILCHIMP_API_KEY", "MAILCHIMP_LIST_ID", "MAILCHIMP_REPLY_TO",
	"AI_HUB_DB_DRIVER", "AI_HUB_DB_DSN", "AI_HUB_PUBLIC_DIR", "AI_HUB_NEWSLETTER_PATH",
	"AI_HUB_LOOKBACK", "SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "SMTP_FROM",
	"NEWSLETTER_PREVIEW_TO", "AI_HUB_API_ADDR",
}

// Test helper: an environment with no config keys and no config file
func cleanEnv(t *testing.T) string {
	for _, key := range configEnvKeys {
		t.Setenv(key, "")
	}
	return isolateHome(t)
}

// TestLoad_Defaults verifies an empty environment starts with defaults
func TestLoad_Defaults(t *testing.T) {
	cleanEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, "ai_news.db", cfg.DBDSN)
	assert.Equal(t, 7*24*time.Hour, cfg.Lookback)
	assert.Empty(t, cfg.NewsAPIKey)
	assert.Empty(t, cfg.MailchimpAPIKey)
}

// TestLoad_NoHome verifies startup succeeds without $HOME and env values
// still apply
func TestLoad_NoHome(t *testing.T) {
	cleanEnv(t)
	t.Setenv("HOME", "")
	t.Setenv("MAILCHIMP_LIST_ID", "list1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "list1", cfg.MailchimpListID)
	assert.Equal(t, DefaultDBDSN, cfg.DBDSN)
}

// TestLoad_Precedence verifies env overrides file overrides defaults
func TestLoad_Precedence(t *testing.T) {
	home := cleanEnv(t)
	writeHomeConfig(t, home, `news_api:
  key: "from-file"
mailchimp:
  list_id: "file-list"
output:
  public_dir: "file-public"
extract:
  lookback: "24h"
`)
	t.Setenv("NEWS_API_KEY", "from-env")
	t.Setenv("AI_HUB_LOOKBACK", "72h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.NewsAPIKey, "env should win over file")
	assert.Equal(t, 72*time.Hour, cfg.Lookback, "env should win over file")
	assert.Equal(t, "file-list", cfg.MailchimpListID, "file should win over default")
	assert.Equal(t, "file-public", cfg.PublicDir)
	assert.Equal(t, DefaultNewsletterPath, cfg.NewsletterPath, "default should remain")
}

// TestLoad_InvalidValues verifies unparseable values are reported
func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "port", key: "SMTP_PORT", want: "failed to parse SMTP_PORT"},
		{name: "lookback", key: "AI_HUB_LOOKBACK", want: "failed to parse AI_HUB_LOOKBACK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanEnv(t)
			t.Setenv(tt.key, "not-a-number")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// TestRedacted verifies secrets are masked and the original kept
func TestRedacted(t *testing.T) {
	cfg := Defaults()
	cfg.NewsAPIKey = "secret"
	cfg.MailchimpAPIKey = "abc-us21"
	cfg.MailchimpListID = "list1"

	redacted := cfg.Redacted()

	assert.Equal(t, "********", redacted.NewsAPIKey)
	assert.Equal(t, "********", redacted.MailchimpAPIKey)
	assert.Equal(t, "", redacted.SMTPPass, "unset secrets stay empty")
	assert.Equal(t, "list1", redacted.MailchimpListID)
	assert.Equal(t, "secret", cfg.NewsAPIKey)
}

// TestRegisterRoutes verifies the config endpoint never leaks secrets
func TestRegisterRoutes(t *testing.T) {
	cleanEnv(t)

	cfg := Defaults()
	cfg.MailchimpAPIKey = "abc-us21"
	cfg.MailchimpListID = "list1"

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), cfg)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/config", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.False(t, strings.Contains(body, "abc-us21"))
	assert.Contains(t, body, `"lookback":"168h0m0s"`)
	assert.Contains(t, body, `"mailchimp":true`)
	assert.Contains(t, body, `"news_api":false`)
}

// TestParseDuration verifies day and week suffixes
func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "90m", want: 90 * time.Minute},
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "2w", want: 14 * 24 * time.Hour},
		{in: "xd", wantErr: true},
		{in: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
