package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig represents the structure of ~/.ai-hub/config.yaml.
type FileConfig struct {
	NewsAPI struct {
		Key string `yaml:"key"`
	} `yaml:"news_api"`
	Mailchimp struct {
		APIKey  string `yaml:"api_key"`
		ListID  string `yaml:"list_id"`
		ReplyTo string `yaml:"reply_to"`
	} `yaml:"mailchimp"`
	Storage struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"dsn"`
	} `yaml:"storage"`
	Output struct {
		PublicDir      string `yaml:"public_dir"`
		NewsletterPath string `yaml:"newsletter_path"`
	} `yaml:"output"`
	Extract struct {
		Lookback string `yaml:"lookback"`
	} `yaml:"extract"`
	SMTP struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		User      string `yaml:"user"`
		Pass      string `yaml:"pass"`
		From      string `yaml:"from"`
		PreviewTo string `yaml:"preview_to"`
	} `yaml:"smtp"`
	API struct {
		Addr string `yaml:"addr"`
	} `yaml:"api"`
}

// ConfigFilePath returns AI_HUB_CONFIG when set, otherwise
// ~/.ai-hub/config.yaml. It returns "" when neither is available, as under
// schedulers that run without $HOME.
func ConfigFilePath() string {
	if path := os.Getenv("AI_HUB_CONFIG"); path != "" {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(homeDir, ".ai-hub", "config.yaml")
}

// LoadConfigFile loads the config file. Returns nil if there is no config
// file path or the file doesn't exist (not an error). Returns error if the
// file exists but cannot be parsed.
func LoadConfigFile() (*FileConfig, error) {
	configPath := ConfigFilePath()
	if configPath == "" {
		return nil, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}
