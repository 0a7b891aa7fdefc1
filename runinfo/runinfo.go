// Package runinfo reads and writes the small JSON records each pipeline stage
// leaves behind: the extraction summary and the content metadata.
package runinfo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default side file names, relative to the working directory.
const (
	DefaultExtractionSummaryPath = "extraction_summary.json"
	DefaultContentMetadataPath   = "content_metadata.json"
)

// SourceReport records what one source contributed to an extraction run.
type SourceReport struct {
	Name     string `json:"name"`
	Articles int    `json:"articles"`
	Error    string `json:"error,omitempty"`
}

// ExtractionSummary is written after every extraction run. TotalArticles
// counts successful insert attempts, NewArticles the rows actually added.
type ExtractionSummary struct {
	RunID         string         `json:"run_id"`
	TotalArticles int            `json:"total_articles"`
	NewArticles   int            `json:"new_articles"`
	Timestamp     string         `json:"timestamp"`
	Sources       []SourceReport `json:"sources"`
}

// ContentMetadata is written after every content generation run.
type ContentMetadata struct {
	RunID           string `json:"run_id"`
	ProductsCount   int    `json:"products_count"`
	IndustriesCount int    `json:"industries_count"`
	GeneratedAt     string `json:"generated_at"`
}

// Timestamp formats t the way every side file records time.
func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// Write marshals v as indented JSON to path, creating parent directories.
func Write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Read unmarshals the JSON file at path into v. A missing file is reported
// as an error wrapping os.ErrNotExist.
func Read(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}
