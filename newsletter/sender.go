// Package newsletter delivers the rendered newsletter: an optional SMTP
// preview copy, then a Mailchimp campaign to the whole audience.
package newsletter

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sameercsai/ai-learning-hub/mailchimp"
)

// DefaultReplyTo is the reply address used when none is configured.
const DefaultReplyTo = "sameer@cognitivesprints.com"

// Config holds everything a send run needs.
type Config struct {
	APIKey         string
	ListID         string
	ReplyTo        string
	NewsletterPath string
	// Overrides the datacenter URL derived from the key; tests only
	BaseURL string
}

// Configured reports whether both Mailchimp credentials are present.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.ListID != ""
}

// Previewer sends a preview copy of the newsletter.
type Previewer interface {
	Send(subject, html string) error
}

// SendResult describes one send run. Err carries a Mailchimp failure; such
// failures are reported, not fatal.
type SendResult struct {
	Skipped       bool
	Previewed     bool
	CampaignID    string
	ContentStatus int
	SendStatus    int
	Err           error
}

// Sent reports whether the send action was issued.
func (r *SendResult) Sent() bool {
	return !r.Skipped && r.Err == nil && r.CampaignID != ""
}

// Sender pushes the newsletter through Mailchimp.
type Sender struct {
	config  Config
	preview Previewer
}

// NewSender creates a sender. preview may be nil.
func NewSender(config Config, preview Previewer) *Sender {
	if config.ReplyTo == "" {
		config.ReplyTo = DefaultReplyTo
	}

	return &Sender{config: config, preview: preview}
}

// Run sends the newsletter. Without credentials it logs and returns
// without any network call. The only returned error is a failure to read the
// newsletter file; Mailchimp failures are logged and recorded in the result.
func (s *Sender) Run(ctx context.Context) (*SendResult, error) {
	result := &SendResult{}

	if !s.config.Configured() {
		log.Printf("WARN: Mailchimp credentials not configured")
		result.Skipped = true
		return result, nil
	}

	data, err := os.ReadFile(s.config.NewsletterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read newsletter: %w", err)
	}
	html := string(data)

	if s.preview != nil {
		if err := s.preview.Send(mailchimp.DefaultSubject, html); err != nil {
			log.Printf("WARN: %v", err)
		} else {
			result.Previewed = true
		}
	}

	client := mailchimp.NewClient(s.config.APIKey, s.config.BaseURL)

	campaign, err := client.CreateCampaign(ctx, mailchimp.CampaignRequest{
		Type:       "regular",
		Recipients: mailchimp.Recipients{ListID: s.config.ListID},
		Settings: mailchimp.Settings{
			SubjectLine: mailchimp.DefaultSubject,
			FromName:    mailchimp.DefaultFromName,
			ReplyTo:     s.config.ReplyTo,
		},
	})
	if err != nil {
		log.Printf("ERROR: Mailchimp API error: %v", err)
		result.Err = err
		return result, nil
	}
	result.CampaignID = campaign.ID

	if result.ContentStatus, err = client.SetContent(ctx, campaign.ID, html); err != nil {
		log.Printf("ERROR: Error sending newsletter: %v", err)
		result.Err = err
		return result, nil
	}

	if result.SendStatus, err = client.Send(ctx, campaign.ID); err != nil {
		log.Printf("ERROR: Error sending newsletter: %v", err)
		result.Err = err
		return result, nil
	}

	log.Printf("INFO: Campaign %s sent (content %d, send %d)", campaign.ID, result.ContentStatus, result.SendStatus)
	return result, nil
}
