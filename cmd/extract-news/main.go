package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sameercsai/ai-learning-hub/articles"
	"github.com/sameercsai/ai-learning-hub/config"
	"github.com/sameercsai/ai-learning-hub/discovery"
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
	lookback := flag.Duration("lookback", cfg.Lookback, "How far back the news search looks (AI_HUB_LOOKBACK)")
	summaryPath := flag.String("summary", runinfo.DefaultExtractionSummaryPath, "Where the run summary is written")
	feedTimeout := flag.Duration("feed-timeout", 30*time.Second, "Timeout per feed fetch")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("🔄 Extracting AI news...")

	log.Printf("INFO: Opening article store: %s", *dsn)
	store, err := articles.NewStore(*driver, *dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open article store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if cfg.NewsAPIKey == "" {
		log.Printf("WARN: NEWS_API_KEY not set, skipping NewsAPI")
	}

	extractor := discovery.NewExtractor(
		store,
		discovery.NewNewsAPIClient(discovery.NewsAPIConfig{APIKey: cfg.NewsAPIKey}),
		discovery.NewFeedFetcher(discovery.DefaultFeeds, *feedTimeout),
		&discovery.ExtractorConfig{Lookback: *lookback, SummaryPath: *summaryPath},
	)

	result, err := extractor.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Extracted %d articles\n", result.Inserted)
}
