package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sameercsai/ai-learning-hub/articles"
	"github.com/sameercsai/ai-learning-hub/classify"
	"github.com/sameercsai/ai-learning-hub/config"
	"github.com/sameercsai/ai-learning-hub/content"
	"github.com/sameercsai/ai-learning-hub/render"
	"github.com/sameercsai/ai-learning-hub/runinfo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	driver := flag.String("driver", cfg.DBDriver, "Article store driver: sqlite3 or postgres (AI_HUB_DB_DRIVER)")
	dsn := flag.String("db", cfg.DBDSN, "Article store DSN (AI_HUB_DB_DSN)")
	publicDir := flag.String("public", cfg.PublicDir, "Website output directory (AI_HUB_PUBLIC_DIR)")
	newsletterPath := flag.String("newsletter", cfg.NewsletterPath, "Newsletter output file (AI_HUB_NEWSLETTER_PATH)")
	metadataPath := flag.String("metadata", runinfo.DefaultContentMetadataPath, "Where the run metadata is written")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("🔄 Generating content...")

	log.Printf("INFO: Opening article store: %s", *dsn)
	store, err := articles.NewStore(*driver, *dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open article store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	generator := content.NewGenerator(
		store,
		classify.DefaultTaxonomy(),
		render.NewRenderer(render.DefaultBranding()),
		&content.GeneratorConfig{
			PublicDir:      *publicDir,
			NewsletterPath: *newsletterPath,
			MetadataPath:   *metadataPath,
		},
	)

	if _, err := generator.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ Website generated")
	fmt.Println("✅ Newsletter generated")
}
