package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sameercsai/ai-learning-hub/config"
	"github.com/sameercsai/ai-learning-hub/newsletter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	newsletterPath := flag.String("newsletter", cfg.NewsletterPath, "Newsletter HTML to send (AI_HUB_NEWSLETTER_PATH)")
	replyTo := flag.String("reply-to", cfg.MailchimpReplyTo, "Campaign reply-to address (MAILCHIMP_REPLY_TO)")
	previewTo := flag.String("preview-to", cfg.PreviewTo, "Send an SMTP preview here first (NEWSLETTER_PREVIEW_TO)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	previewConfig := newsletter.PreviewConfig{
		SMTPServer: cfg.SMTPHost,
		SMTPPort:   cfg.SMTPPort,
		SMTPUser:   cfg.SMTPUser,
		SMTPPass:   cfg.SMTPPass,
		FromEmail:  cfg.SMTPFrom,
		ToEmail:    *previewTo,
	}

	var preview newsletter.Previewer
	if previewConfig.Enabled() {
		preview = newsletter.NewSMTPPreview(previewConfig)
	}

	sender := newsletter.NewSender(newsletter.Config{
		APIKey:         cfg.MailchimpAPIKey,
		ListID:         cfg.MailchimpListID,
		ReplyTo:        *replyTo,
		NewsletterPath: *newsletterPath,
	}, preview)

	result, err := sender.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case result.Skipped:
		fmt.Println("⚠️  Mailchimp credentials not configured")
	case result.Sent():
		fmt.Println("✅ Newsletter sent via Mailchimp!")
	default:
		fmt.Printf("⚠️  Error sending newsletter: %v\n", result.Err)
	}
}
