// Package config resolves the pipeline settings. Each value comes from the
// environment when set, then from the yaml config file, then from the
// built-in default. A missing value never fails startup; the stage that
// needs it skips the feature instead.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Built-in defaults.
const (
	DefaultDBDriver       = "sqlite3"
	DefaultDBDSN          = "ai_news.db"
	DefaultPublicDir      = "public"
	DefaultNewsletterPath = "newsletter.html"
	DefaultReplyTo        = "sameer@cognitivesprints.com"
	DefaultLookback       = 7 * 24 * time.Hour
	DefaultSMTPPort       = 587
	DefaultAPIAddr        = ":8080"
)

// Config is the resolved configuration shared by every binary.
type Config struct {
	NewsAPIKey string `json:"news_api_key"`

	MailchimpAPIKey  string `json:"mailchimp_api_key"`
	MailchimpListID  string `json:"mailchimp_list_id"`
	MailchimpReplyTo string `json:"mailchimp_reply_to"`

	DBDriver string `json:"db_driver"`
	DBDSN    string `json:"db_dsn"`

	PublicDir      string        `json:"public_dir"`
	NewsletterPath string        `json:"newsletter_path"`
	Lookback       time.Duration `json:"-"`

	SMTPHost  string `json:"smtp_host"`
	SMTPPort  int    `json:"smtp_port"`
	SMTPUser  string `json:"smtp_user"`
	SMTPPass  string `json:"smtp_pass"`
	SMTPFrom  string `json:"smtp_from"`
	PreviewTo string `json:"preview_to"`

	APIAddr string `json:"api_addr"`
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		MailchimpReplyTo: DefaultReplyTo,
		DBDriver:         DefaultDBDriver,
		DBDSN:            DefaultDBDSN,
		PublicDir:        DefaultPublicDir,
		NewsletterPath:   DefaultNewsletterPath,
		Lookback:         DefaultLookback,
		SMTPPort:         DefaultSMTPPort,
		APIAddr:          DefaultAPIAddr,
	}
}

// Load resolves the configuration. Only an unreadable config file or an
// unparseable value is an error.
func Load() (*Config, error) {
	cfg := Defaults()

	file, err := LoadConfigFile()
	if err != nil {
		return nil, err
	}
	if file != nil {
		if err := cfg.applyFile(file); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyFile(f *FileConfig) error {
	setString(&c.NewsAPIKey, f.NewsAPI.Key)
	setString(&c.MailchimpAPIKey, f.Mailchimp.APIKey)
	setString(&c.MailchimpListID, f.Mailchimp.ListID)
	setString(&c.MailchimpReplyTo, f.Mailchimp.ReplyTo)
	setString(&c.DBDriver, f.Storage.Driver)
	setString(&c.DBDSN, f.Storage.DSN)
	setString(&c.PublicDir, f.Output.PublicDir)
	setString(&c.NewsletterPath, f.Output.NewsletterPath)
	setString(&c.SMTPHost, f.SMTP.Host)
	setString(&c.SMTPUser, f.SMTP.User)
	setString(&c.SMTPPass, f.SMTP.Pass)
	setString(&c.SMTPFrom, f.SMTP.From)
	setString(&c.PreviewTo, f.SMTP.PreviewTo)
	setString(&c.APIAddr, f.API.Addr)

	if f.SMTP.Port != 0 {
		c.SMTPPort = f.SMTP.Port
	}

	if f.Extract.Lookback != "" {
		lookback, err := ParseDuration(f.Extract.Lookback)
		if err != nil {
			return fmt.Errorf("failed to parse extract.lookback: %w", err)
		}
		c.Lookback = lookback
	}

	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.NewsAPIKey, os.Getenv("NEWS_API_KEY"))
	setString(&c.MailchimpAPIKey, os.Getenv("MAILCHIMP_API_KEY"))
	setString(&c.MailchimpListID, os.Getenv("MAILCHIMP_LIST_ID"))
	setString(&c.MailchimpReplyTo, os.Getenv("MAILCHIMP_REPLY_TO"))
	setString(&c.DBDriver, os.Getenv("AI_HUB_DB_DRIVER"))
	setString(&c.DBDSN, os.Getenv("AI_HUB_DB_DSN"))
	setString(&c.PublicDir, os.Getenv("AI_HUB_PUBLIC_DIR"))
	setString(&c.NewsletterPath, os.Getenv("AI_HUB_NEWSLETTER_PATH"))
	setString(&c.SMTPHost, os.Getenv("SMTP_HOST"))
	setString(&c.SMTPUser, os.Getenv("SMTP_USER"))
	setString(&c.SMTPPass, os.Getenv("SMTP_PASS"))
	setString(&c.SMTPFrom, os.Getenv("SMTP_FROM"))
	setString(&c.PreviewTo, os.Getenv("NEWSLETTER_PREVIEW_TO"))
	setString(&c.APIAddr, os.Getenv("AI_HUB_API_ADDR"))

	if value := os.Getenv("SMTP_PORT"); value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("failed to parse SMTP_PORT: %w", err)
		}
		c.SMTPPort = port
	}

	if value := os.Getenv("AI_HUB_LOOKBACK"); value != "" {
		lookback, err := ParseDuration(value)
		if err != nil {
			return fmt.Errorf("failed to parse AI_HUB_LOOKBACK: %w", err)
		}
		c.Lookback = lookback
	}

	return nil
}

// Redacted returns a copy with every secret masked.
func (c *Config) Redacted() *Config {
	out := *c
	out.NewsAPIKey = mask(c.NewsAPIKey)
	out.MailchimpAPIKey = mask(c.MailchimpAPIKey)
	out.SMTPPass = mask(c.SMTPPass)
	return &out
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}
