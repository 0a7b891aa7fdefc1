package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sameercsai/ai-learning-hub/articles"
	"github.com/sameercsai/ai-learning-hub/classify"
	"github.com/sameercsai/ai-learning-hub/render"
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// printListTable prints articles in human-readable table format
func printListTable(items []articles.Article, total, offset int) {
	if len(items) == 0 {
		fmt.Println("No articles to display.")
		return
	}

	fmt.Printf("Showing %d-%d of %d articles\n\n", offset+1, offset+len(items), total)

	for _, item := range items {
		title := ellipsis(item.Title, 70)
		description := ellipsis(item.Description, 150)

		fmt.Printf("#%d %s\n", item.ID, title)
		fmt.Printf("   %s | Published: %s\n", sourceName(item), publishedOrUnknown(item))
		if description != "" {
			fmt.Printf("   %s\n", description)
		}
		fmt.Printf("   URL: %s\n", item.URL)
		fmt.Println()
	}
}

// printListJSON prints articles in JSON format
func printListJSON(items []articles.Article, total int) {
	if items == nil {
		items = []articles.Article{}
	}
	printJSON(articles.ListArticlesResponse{Articles: items, Total: total})
}

// printListCompact prints articles one per line
func printListCompact(items []articles.Article) {
	if len(items) == 0 {
		fmt.Println("No articles to display.")
		return
	}

	for _, item := range items {
		fmt.Printf("%6d %s (%s)\n", item.ID, item.Title, sourceName(item))
	}
}

func printArticle(item articles.Article, taxonomy classify.Taxonomy) {
	fmt.Println(rule)
	fmt.Println(item.Title)
	fmt.Println(rule)
	fmt.Println()

	fmt.Printf("Source:      %s\n", sourceName(item))
	fmt.Printf("Published:   %s\n", publishedOrUnknown(item))
	fmt.Println()
	fmt.Printf("URL:         %s\n", item.URL)
	fmt.Println()

	if item.Description != "" {
		fmt.Println("Description:")
		fmt.Println(wrapText(item.Description, 80))
		fmt.Println()
	}

	text := classify.Text(item)
	fmt.Printf("Product:     %t (%d keyword hits)\n", taxonomy.IsProduct(text), taxonomy.ProductHits(text))
	if industries := taxonomy.MatchIndustries(text); len(industries) > 0 {
		fmt.Printf("Industries:  %s\n", strings.Join(industries, ", "))
	}
	fmt.Printf("ID:          %d\n", item.ID)
}

func printClassification(result classify.Result, total int) {
	fmt.Printf("%d articles, %d products\n\n", total, len(result.Products))

	if len(result.Industries) == 0 {
		fmt.Println("No industry matches.")
	} else {
		fmt.Printf("%-20s %s\n", "INDUSTRY", "USE CASES")
		fmt.Println("------------------------------")
		for _, b := range result.Industries {
			fmt.Printf("%-20s %d\n", b.Industry, len(b.Articles))
		}
	}

	if len(result.Products) > 0 {
		fmt.Println()
		fmt.Println("Newsletter picks:")
		for i, p := range result.Products {
			if i == render.MaxNewsletterProducts {
				break
			}
			fmt.Printf("  %d. %s\n", i+1, render.Truncate(p.Title, render.TitleLimit))
		}
	}
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(data))
}

func sourceName(item articles.Article) string {
	if item.Source == "" {
		return "Unknown"
	}
	return item.Source
}

func publishedOrUnknown(item articles.Article) string {
	if item.PublishedAt == "" {
		return "unknown"
	}
	return item.PublishedAt
}

func ellipsis(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return render.Truncate(s, n-3) + "..."
}

// wrapText wraps text to a maximum line width
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range words {
		if currentLine.Len() == 0 {
			currentLine.WriteString(word)
		} else if currentLine.Len()+1+len(word) <= width {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n")
}
