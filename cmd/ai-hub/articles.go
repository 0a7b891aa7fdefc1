package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/sameercsai/ai-learning-hub/articles"
	"github.com/sameercsai/ai-learning-hub/classify"
)

func handleArticlesList(store *articles.Store, args []string) {
	fs := flag.NewFlagSet("articles list", flag.ExitOnError)
	source := fs.String("source", "", "Filter by source name")
	limit := fs.Int("limit", 20, "Maximum number of articles to display")
	offset := fs.Int("offset", 0, "Number of articles to skip")
	format := fs.String("format", "table", "Output format: table, json, compact")
	fs.Parse(args)

	ctx := context.Background()

	filter := articles.ArticleFilter{Limit: *limit, Offset: *offset}
	if *source != "" {
		filter.Source = source
	}

	items, err := store.List(ctx, filter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to list articles: %v\n", err)
		os.Exit(1)
	}

	total, err := store.Count(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to count articles: %v\n", err)
		os.Exit(1)
	}

	switch *format {
	case "table":
		printListTable(items, total, *offset)
	case "json":
		printListJSON(items, total)
	case "compact":
		printListCompact(items)
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid format: %s (must be table, json, or compact)\n", *format)
		os.Exit(1)
	}
}

func handleArticlesShow(store *articles.Store, args []string) {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: article ID is required\n")
		fmt.Fprintf(os.Stderr, "Usage: ai-hub articles show <article-id>\n")
		os.Exit(1)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid article ID: %s\n", args[0])
		os.Exit(1)
	}

	article, err := store.Get(context.Background(), id)
	if errors.Is(err, articles.ErrArticleNotFound) {
		fmt.Fprintf(os.Stderr, "Error: article not found: %d\n", id)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to get article: %v\n", err)
		os.Exit(1)
	}

	printArticle(*article, classify.DefaultTaxonomy())
}

func handleClassify(store *articles.Store, args []string) {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	format := fs.String("format", "table", "Output format: table, json")
	fs.Parse(args)

	items, err := store.All(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to read articles: %v\n", err)
		os.Exit(1)
	}

	result := classify.DefaultTaxonomy().Classify(items)

	switch *format {
	case "table":
		printClassification(result, len(items))
	case "json":
		printJSON(classify.NewClassificationResponse(result))
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid format: %s (must be table or json)\n", *format)
		os.Exit(1)
	}
}
