package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sameercsai/ai-learning-hub/articles"
	"github.com/sameercsai/ai-learning-hub/config"
	"github.com/sameercsai/ai-learning-hub/runinfo"
)

// handleStatus reports configuration and the latest run of each stage.
func handleStatus(cfg *config.Config, args []string) {
	flags := flag.NewFlagSet("status", flag.ExitOnError)
	format := flags.String("format", "table", "Output format: table, json")
	flags.Parse(args)

	if *format == "json" {
		printJSON(config.NewConfigResponse(cfg))
		return
	}

	resp := config.NewConfigResponse(cfg)

	fmt.Println("Configuration")
	fmt.Println("-------------")
	fmt.Printf("Config file:     %s\n", resp.ConfigFile)
	fmt.Printf("Store:           %s (%s)\n", cfg.DBDSN, cfg.DBDriver)
	fmt.Printf("Website:         %s\n", filepath.Join(cfg.PublicDir, "index.html"))
	fmt.Printf("Newsletter:      %s\n", cfg.NewsletterPath)
	fmt.Printf("Lookback:        %s\n", resp.Lookback)
	fmt.Println()

	fmt.Println("Features")
	fmt.Println("--------")
	for _, name := range []string{"news_api", "mailchimp", "smtp_preview", "postgres_store"} {
		fmt.Printf("%-16s %s\n", name+":", onOff(resp.Features[name]))
	}
	fmt.Println()

	if !storeExists(cfg) {
		fmt.Println("Articles:        no store yet")
	} else if store, err := articles.NewStore(cfg.DBDriver, cfg.DBDSN); err != nil {
		fmt.Printf("Articles:        ✗ %v\n", err)
	} else {
		count, err := store.Count(context.Background())
		store.Close()
		if err != nil {
			fmt.Printf("Articles:        ✗ %v\n", err)
		} else {
			fmt.Printf("Articles:        %d\n", count)
		}
	}
	fmt.Println()

	var summary runinfo.ExtractionSummary
	switch err := runinfo.Read(runinfo.DefaultExtractionSummaryPath, &summary); {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Println("Last extraction: never")
	case err != nil:
		fmt.Printf("Last extraction: ✗ %v\n", err)
	default:
		fmt.Printf("Last extraction: %s (%d articles, %d new)\n", summary.Timestamp, summary.TotalArticles, summary.NewArticles)
		for _, src := range summary.Sources {
			if src.Error != "" {
				fmt.Printf("  ✗ %s: %s\n", src.Name, src.Error)
			} else {
				fmt.Printf("  ✓ %s: %d\n", src.Name, src.Articles)
			}
		}
	}

	var metadata runinfo.ContentMetadata
	switch err := runinfo.Read(runinfo.DefaultContentMetadataPath, &metadata); {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Println("Last generation: never")
	case err != nil:
		fmt.Printf("Last generation: ✗ %v\n", err)
	default:
		fmt.Printf("Last generation: %s (%d products, %d industries)\n", metadata.GeneratedAt, metadata.ProductsCount, metadata.IndustriesCount)
	}

	if _, err := os.Stat(cfg.NewsletterPath); err != nil {
		fmt.Println("Newsletter file: missing")
	}
}

// storeExists reports whether opening the store would find existing data.
// Opening a sqlite store creates the file, which status must not do.
func storeExists(cfg *config.Config) bool {
	switch strings.ToLower(cfg.DBDriver) {
	case "", "sqlite", "sqlite3":
		_, err := os.Stat(cfg.DBDSN)
		return err == nil
	default:
		return true
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "✓ enabled"
	}
	return "✗ disabled"
}
