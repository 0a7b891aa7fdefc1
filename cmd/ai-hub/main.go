package main

import (
	"fmt"
	"os"

	"github.com/sameercsai/ai-learning-hub/articles"
	"github.com/sameercsai/ai-learning-hub/config"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	subcommand := os.Args[1]

	switch subcommand {
	case "articles":
		if len(os.Args) < 3 {
			printArticlesUsage()
			os.Exit(1)
		}
		handleArticlesCommand(cfg, os.Args[2], os.Args[3:])
	case "classify":
		withStore(cfg, func(store *articles.Store) { handleClassify(store, os.Args[2:]) })
	case "status":
		handleStatus(cfg, os.Args[2:])
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

// withStore opens the article store for the duration of fn.
func withStore(cfg *config.Config, fn func(store *articles.Store)) {
	store, err := articles.NewStore(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open article store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fn(store)
}

func handleArticlesCommand(cfg *config.Config, action string, args []string) {
	switch action {
	case "list":
		withStore(cfg, func(store *articles.Store) { handleArticlesList(store, args) })
	case "show":
		withStore(cfg, func(store *articles.Store) { handleArticlesShow(store, args) })
	case "help", "--help", "-h":
		printArticlesUsage()
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown articles command: %s\n\n", action)
		printArticlesUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("ai-hub - AI learning hub CLI client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ai-hub <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  articles   Browse stored articles")
	fmt.Println("  classify   Show how stored articles classify")
	fmt.Println("  status     Show configuration and the latest pipeline runs")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  AI_HUB_CONFIG     Path to config file (default: ~/.ai-hub/config.yaml)")
	fmt.Println("  AI_HUB_DB_DRIVER  Article store driver (default: sqlite3)")
	fmt.Println("  AI_HUB_DB_DSN     Article store DSN (default: ai_news.db)")
}

func printArticlesUsage() {
	fmt.Println("ai-hub articles - Browse stored articles")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ai-hub articles <action> [arguments]")
	fmt.Println()
	fmt.Println("Actions:")
	fmt.Println("  list       List articles")
	fmt.Println("  show       Show one article")
	fmt.Println("  help       Show this help message")
}
