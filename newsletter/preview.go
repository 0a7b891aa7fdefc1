package newsletter

import (
	"fmt"
	"log"
	"time"

	gomail "gopkg.in/mail.v2"
)

// PreviewConfig is the SMTP account used to mail a preview copy of the
// newsletter before the campaign goes out.
type PreviewConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
}

// Enabled reports whether a preview can be sent.
func (c PreviewConfig) Enabled() bool {
	return c.SMTPServer != "" && c.ToEmail != ""
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPPreview mails the rendered newsletter to a single preview address.
type SMTPPreview struct {
	config PreviewConfig
	dialer dialer
}

// NewSMTPPreview creates a preview sender. A zero port uses 587.
func NewSMTPPreview(config PreviewConfig) *SMTPPreview {
	if config.SMTPPort == 0 {
		config.SMTPPort = 587
	}
	if config.FromEmail == "" {
		config.FromEmail = config.SMTPUser
	}

	d := gomail.NewDialer(config.SMTPServer, config.SMTPPort, config.SMTPUser, config.SMTPPass)
	d.Timeout = 10 * time.Second

	return &SMTPPreview{config: config, dialer: d}
}

// Send mails html to the preview address.
func (p *SMTPPreview) Send(subject, html string) error {
	message := gomail.NewMessage()

	message.SetHeader("From", p.config.FromEmail)
	message.SetHeader("To", p.config.ToEmail)
	message.SetHeader("Subject", "[Preview] "+subject)
	message.SetBody("text/html", html)

	if err := p.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send preview to %s: %w", p.config.ToEmail, err)
	}

	log.Printf("INFO: Preview sent to %s", p.config.ToEmail)
	return nil
}
