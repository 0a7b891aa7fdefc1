// Package content turns the stored articles into the public website, the
// newsletter body and the run metadata file.
package content

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sameercsai/ai-learning-hub/classify"
	"github.com/sameercsai/ai-learning-hub/render"
	"github.com/sameercsai/ai-learning-hub/runinfo"
)

// Default output locations, relative to the working directory.
const (
	DefaultPublicDir      = "public"
	DefaultNewsletterPath = "newsletter.html"
	WebsiteFileName       = "index.html"
)

// GeneratorConfig holds output locations for a generation run.
type GeneratorConfig struct {
	PublicDir      string
	NewsletterPath string
	MetadataPath   string
}

// DefaultGeneratorConfig returns the default output locations.
func DefaultGeneratorConfig() *GeneratorConfig {
	return &GeneratorConfig{
		PublicDir:      DefaultPublicDir,
		NewsletterPath: DefaultNewsletterPath,
		MetadataPath:   runinfo.DefaultContentMetadataPath,
	}
}

// WebsitePath is where the landing page is written.
func (c *GeneratorConfig) WebsitePath() string {
	return filepath.Join(c.PublicDir, WebsiteFileName)
}

// GenerateResult describes one generation run.
type GenerateResult struct {
	RunID          uuid.UUID
	Articles       int
	Classification classify.Result
	WebsitePath    string
	NewsletterPath string
}

// Generator reads the whole store, classifies it and renders both outputs.
type Generator struct {
	store    classify.ArticleLister
	taxonomy classify.Taxonomy
	renderer *render.Renderer
	config   *GeneratorConfig
	now      func() time.Time
}

// NewGenerator creates a generator. A nil config uses
// DefaultGeneratorConfig.
func NewGenerator(
	store classify.ArticleLister,
	taxonomy classify.Taxonomy,
	renderer *render.Renderer,
	config *GeneratorConfig,
) *Generator {
	if config == nil {
		config = DefaultGeneratorConfig()
	}

	return &Generator{
		store:    store,
		taxonomy: taxonomy,
		renderer: renderer,
		config:   config,
		now:      time.Now,
	}
}

// Run renders the website, the newsletter and the metadata file. Both
// documents are rendered before anything is written, so a store or template
// failure leaves no partial output behind.
func (g *Generator) Run(ctx context.Context) (*GenerateResult, error) {
	items, err := g.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read articles: %w", err)
	}

	now := g.now()
	result := &GenerateResult{
		RunID:          uuid.New(),
		Articles:       len(items),
		Classification: g.taxonomy.Classify(items),
		WebsitePath:    g.config.WebsitePath(),
		NewsletterPath: g.config.NewsletterPath,
	}

	log.Printf("INFO: Classified %d articles: %d products, %d industries",
		result.Articles, len(result.Classification.Products), len(result.Classification.Industries))

	website, err := g.renderer.Website(result.Classification, now)
	if err != nil {
		return nil, err
	}

	newsletter, err := g.renderer.Newsletter(result.Classification, now)
	if err != nil {
		return nil, err
	}

	if err := writeFile(result.WebsitePath, website); err != nil {
		return nil, fmt.Errorf("failed to write website: %w", err)
	}

	if err := writeFile(result.NewsletterPath, newsletter); err != nil {
		return nil, fmt.Errorf("failed to write newsletter: %w", err)
	}

	metadata := runinfo.ContentMetadata{
		RunID:           result.RunID.String(),
		ProductsCount:   len(result.Classification.Products),
		IndustriesCount: len(result.Classification.Industries),
		GeneratedAt:     runinfo.Timestamp(now),
	}
	if err := runinfo.Write(g.config.MetadataPath, metadata); err != nil {
		return nil, fmt.Errorf("failed to write content metadata: %w", err)
	}

	return result, nil
}

func writeFile(path, body string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(body), 0o644)
}
