// Package mailchimp is a minimal client for the Mailchimp marketing API:
// create a campaign, set its HTML content and send it.
package mailchimp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrCampaignCreate is returned when Mailchimp rejects a new campaign.
var ErrCampaignCreate = errors.New("mailchimp campaign creation failed")

// Campaign defaults.
const (
	DefaultSubject  = "🤖 Your Weekly AI Update"
	DefaultFromName = "Cognitive Sprints"
	DefaultTimeout  = 30 * time.Second
)

// Datacenter returns the datacenter suffix of an API key: the text after the
// last "-", or the whole key when it has none.
func Datacenter(apiKey string) string {
	if i := strings.LastIndex(apiKey, "-"); i >= 0 {
		return apiKey[i+1:]
	}
	return apiKey
}

// BaseURL returns the API root for the datacenter the key belongs to.
func BaseURL(apiKey string) string {
	return fmt.Sprintf("https://%s.api.mailchimp.com/3.0", Datacenter(apiKey))
}

// Settings are the campaign settings Mailchimp requires.
type Settings struct {
	SubjectLine string `json:"subject_line"`
	FromName    string `json:"from_name"`
	ReplyTo     string `json:"reply_to"`
}

// Recipients selects the audience a campaign goes to.
type Recipients struct {
	ListID string `json:"list_id"`
}

// CampaignRequest is the body of POST /campaigns.
type CampaignRequest struct {
	Type       string     `json:"type"`
	Recipients Recipients `json:"recipients"`
	Settings   Settings   `json:"settings"`
}

// Campaign is the part of a campaign response we use.
type Campaign struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type contentRequest struct {
	HTML string `json:"html"`
}

// Client talks to one Mailchimp account.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for apiKey. An empty baseURL is derived from
// the key's datacenter.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL(apiKey)
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// CreateCampaign creates a regular campaign. Any status other than 200, or a
// response without a campaign id, is reported as ErrCampaignCreate.
func (c *Client) CreateCampaign(ctx context.Context, req CampaignRequest) (*Campaign, error) {
	if req.Type == "" {
		req.Type = "regular"
	}

	resp, err := c.do(ctx, http.MethodPost, "/campaigns", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrCampaignCreate, resp.StatusCode)
	}

	var campaign Campaign
	if err := json.NewDecoder(resp.Body).Decode(&campaign); err != nil {
		return nil, fmt.Errorf("failed to decode campaign: %w", err)
	}
	if campaign.ID == "" {
		return nil, fmt.Errorf("%w: response has no campaign id", ErrCampaignCreate)
	}

	return &campaign, nil
}

// SetContent uploads the campaign HTML and returns the response status.
func (c *Client) SetContent(ctx context.Context, campaignID, html string) (int, error) {
	return c.status(ctx, http.MethodPut, "/campaigns/"+campaignID+"/content", contentRequest{HTML: html})
}

// Send triggers delivery of a campaign and returns the response status.
func (c *Client) Send(ctx context.Context, campaignID string) (int, error) {
	return c.status(ctx, http.MethodPost, "/campaigns/"+campaignID+"/actions/send", nil)
}

func (c *Client) status(ctx context.Context, method, path string, body any) (int, error) {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call mailchimp %s %s: %w", method, path, err)
	}

	return resp, nil
}
