// Package discovery gathers candidate articles from the news search API and
// the AI RSS feeds, removes duplicate urls and appends them to the article
// store.
package discovery

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sameercsai/ai-learning-hub/articles"
	"github.com/sameercsai/ai-learning-hub/runinfo"
)

// ArticleInserter is the write side of the article store.
type ArticleInserter interface {
	Insert(ctx context.Context, article articles.Article) (bool, error)
}

// NewsSearcher fetches articles from a news search API.
type NewsSearcher interface {
	Fetch(ctx context.Context, lookback time.Duration) FetchResult
}

// FeedReader fetches articles from a list of feeds, one result per feed.
type FeedReader interface {
	Fetch(ctx context.Context) []FetchResult
}

// ExtractorConfig holds configuration for an extraction run.
type ExtractorConfig struct {
	// How far back the news search looks
	Lookback time.Duration
	// Where the run summary is written
	SummaryPath string
}

// DefaultExtractorConfig returns a 7 day lookback and the default summary
// path.
func DefaultExtractorConfig() *ExtractorConfig {
	return &ExtractorConfig{
		Lookback:    DefaultLookback,
		SummaryPath: runinfo.DefaultExtractionSummaryPath,
	}
}

// ExtractResult describes one extraction run.
type ExtractResult struct {
	RunID    uuid.UUID
	Sources  []FetchResult
	Fetched  int // articles returned by all sources
	Unique   int // articles left after deduplication
	Inserted int // successful insert attempts, duplicates included
	New      int // rows actually added to the store
}

// Extractor runs one fetch, dedupe and persist cycle.
type Extractor struct {
	store  ArticleInserter
	news   NewsSearcher
	feeds  FeedReader
	config *ExtractorConfig
	now    func() time.Time
}

// NewExtractor creates an extractor. A nil config uses
// DefaultExtractorConfig.
func NewExtractor(
	store ArticleInserter,
	news NewsSearcher,
	feeds FeedReader,
	config *ExtractorConfig,
) *Extractor {
	if config == nil {
		config = DefaultExtractorConfig()
	}

	return &Extractor{
		store:  store,
		news:   news,
		feeds:  feeds,
		config: config,
		now:    time.Now,
	}
}

// Run fetches from every source, persists the unique articles and writes
// the run summary. Source failures are logged and never abort the run; only
// a failure to write the summary is returned.
func (e *Extractor) Run(ctx context.Context) (*ExtractResult, error) {
	result := &ExtractResult{RunID: uuid.New()}

	result.Sources = append(result.Sources, e.news.Fetch(ctx, e.config.Lookback))
	result.Sources = append(result.Sources, e.feeds.Fetch(ctx)...)

	for _, src := range result.Sources {
		if !src.OK() {
			log.Printf("ERROR: Source %s failed: %v", src.Source, src.Err)
			continue
		}
		log.Printf("INFO: Source %s returned %d articles", src.Source, len(src.Articles))
	}

	merged := Merge(result.Sources...)
	unique := Dedupe(merged)
	result.Fetched = len(merged)
	result.Unique = len(unique)

	for _, article := range unique {
		added, err := e.store.Insert(ctx, article)
		if err != nil {
			log.Printf("WARN: Failed to insert article %s: %v", article.URL, err)
			continue
		}

		result.Inserted++
		if added {
			result.New++
		}
	}

	log.Printf("INFO: Stored %d of %d unique articles (%d new)", result.Inserted, result.Unique, result.New)

	if err := runinfo.Write(e.config.SummaryPath, e.summary(result)); err != nil {
		return result, fmt.Errorf("failed to write extraction summary: %w", err)
	}

	return result, nil
}

func (e *Extractor) summary(result *ExtractResult) runinfo.ExtractionSummary {
	summary := runinfo.ExtractionSummary{
		RunID:         result.RunID.String(),
		TotalArticles: result.Inserted,
		NewArticles:   result.New,
		Timestamp:     runinfo.Timestamp(e.now()),
		Sources:       make([]runinfo.SourceReport, 0, len(result.Sources)),
	}

	for _, src := range result.Sources {
		report := runinfo.SourceReport{Name: src.Source, Articles: len(src.Articles)}
		if src.Err != nil {
			report.Error = src.Err.Error()
		}
		summary.Sources = append(summary.Sources, report)
	}

	return summary
}
