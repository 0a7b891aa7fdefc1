package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sameercsai/ai-learning-hub/articles"
)

// NewsAPI search parameters.
const (
	DefaultNewsAPIEndpoint = "https://newsapi.org/v2/everything"
	NewsAPIQuery           = "artificial intelligence OR machine learning"
	NewsAPIPageSize        = 100
	NewsAPISourceName      = "NewsAPI"
	DefaultLookback        = 7 * 24 * time.Hour
)

// NewsAPIConfig configures the news search client.
type NewsAPIConfig struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

// NewsAPIClient searches NewsAPI for AI and machine learning coverage.
type NewsAPIClient struct {
	config     NewsAPIConfig
	httpClient *http.Client
	now        func() time.Time
}

// newsAPIResponse mirrors the fields of the /v2/everything response we read.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// NewNewsAPIClient creates a client. Empty Endpoint and Timeout fall back to
// the public endpoint and a 10 second timeout.
func NewNewsAPIClient(config NewsAPIConfig) *NewsAPIClient {
	if config.Endpoint == "" {
		config.Endpoint = DefaultNewsAPIEndpoint
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}

	return &NewsAPIClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		now:        time.Now,
	}
}

// Fetch issues a single search for articles published within lookback,
// newest first. Without an API key it returns an empty, successful result
// and makes no request.
func (c *NewsAPIClient) Fetch(ctx context.Context, lookback time.Duration) FetchResult {
	if c.config.APIKey == "" {
		return FetchResult{Source: NewsAPISourceName}
	}
	if lookback <= 0 {
		lookback = DefaultLookback
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(lookback), nil)
	if err != nil {
		return failed(NewsAPISourceName, fmt.Errorf("failed to build request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failed(NewsAPISourceName, fmt.Errorf("failed to query news api: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return failed(NewsAPISourceName, fmt.Errorf("news api returned status %d", resp.StatusCode))
	}

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return failed(NewsAPISourceName, fmt.Errorf("failed to decode news api response: %w", err))
	}

	result := FetchResult{Source: NewsAPISourceName}
	for _, a := range body.Articles {
		source := a.Source.Name
		if source == "" {
			source = "Unknown"
		}

		result.Articles = append(result.Articles, articles.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      source,
		})
	}

	return result
}

func (c *NewsAPIClient) searchURL(lookback time.Duration) string {
	params := url.Values{}
	params.Set("q", NewsAPIQuery)
	params.Set("from", c.now().Add(-lookback).Format("2006-01-02"))
	params.Set("sortBy", "publishedAt")
	params.Set("apiKey", c.config.APIKey)
	params.Set("pageSize", strconv.Itoa(NewsAPIPageSize))

	return c.config.Endpoint + "?" + params.Encode()
}
