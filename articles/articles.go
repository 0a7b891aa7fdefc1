// Package articles persists ingested news articles in a single relational
// table. The table is append-only: rows are inserted once per url and are
// never updated or deleted.
//
// The store takes no locks. Running two extractors against the same sqlite
// file at the same time is unsupported.
package articles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Custom errors for article operations
var (
	ErrArticleNotFound   = errors.New("article not found")
	ErrUnsupportedDriver = errors.New("driver must be sqlite or postgres")
)

// Article is one ingested news item. URL is the natural key.
type Article struct {
	ID          int64  `db:"id" json:"id"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
	URL         string `db:"url" json:"url"`
	PublishedAt string `db:"published_at" json:"published_at"`
	Source      string `db:"source" json:"source"`
}

// ArticleFilter represents filtering options for listing articles.
type ArticleFilter struct {
	Source *string // Filter by source name
	Limit  int     // Pagination limit
	Offset int     // Pagination offset
}

// Store manages articles in sqlite (default) or postgres.
type Store struct {
	db     *sqlx.DB
	driver string
}

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS articles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT,
		description TEXT,
		url TEXT UNIQUE,
		published_at TEXT,
		source TEXT
	);
	`

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS articles (
		id BIGSERIAL PRIMARY KEY,
		title TEXT,
		description TEXT,
		url TEXT UNIQUE,
		published_at TEXT,
		source TEXT
	);
	`

// NewStore opens the article store and creates the articles table if it
// doesn't exist. driver is "sqlite" (dsn is a file path) or "postgres".
func NewStore(driver, dsn string) (*Store, error) {
	driverName, err := normalizeDriver(driver)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, driver: driverName}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func normalizeDriver(driver string) (string, error) {
	switch strings.ToLower(driver) {
	case "", "sqlite", "sqlite3":
		return "sqlite3", nil
	case "postgres", "postgresql":
		return "postgres", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// initSchema creates the articles table if it doesn't exist.
func (s *Store) initSchema() error {
	schema := sqliteSchema
	if s.driver == "postgres" {
		schema = postgresSchema
	}

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert stores an article unless its url is already present. The returned
// bool reports whether a new row was written; a duplicate url is not an
// error.
func (s *Store) Insert(ctx context.Context, article Article) (bool, error) {
	query := s.db.Rebind(`
		INSERT INTO articles (title, description, url, published_at, source)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (url) DO NOTHING
	`)

	result, err := s.db.ExecContext(ctx, query,
		article.Title,
		article.Description,
		article.URL,
		article.PublishedAt,
		article.Source,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert article: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows > 0, nil
}

// selectColumns tolerates NULL text written by other tools.
const selectColumns = `
	SELECT id,
	       COALESCE(title, '') AS title,
	       COALESCE(description, '') AS description,
	       COALESCE(url, '') AS url,
	       COALESCE(published_at, '') AS published_at,
	       COALESCE(source, '') AS source
	FROM articles
`

// List returns articles in insertion order with optional filtering.
func (s *Store) List(ctx context.Context, filter ArticleFilter) ([]Article, error) {
	query := selectColumns

	var args []any
	if filter.Source != nil {
		query += " WHERE source = ?"
		args = append(args, *filter.Source)
	}

	query += " ORDER BY id ASC"

	switch {
	case filter.Limit > 0:
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	case filter.Offset > 0 && s.driver == "postgres":
		query += " LIMIT ALL"
	case filter.Offset > 0:
		// sqlite only accepts OFFSET after a LIMIT
		query += " LIMIT -1"
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	var articles []Article
	if err := s.db.SelectContext(ctx, &articles, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

// All returns every stored article in insertion order.
func (s *Store) All(ctx context.Context) ([]Article, error) {
	return s.List(ctx, ArticleFilter{})
}

// Get retrieves an article by ID.
func (s *Store) Get(ctx context.Context, id int64) (*Article, error) {
	var article Article
	err := s.db.GetContext(ctx, &article, s.db.Rebind(selectColumns+" WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query article: %w", err)
	}

	return &article, nil
}

// Count returns the number of stored articles.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM articles"); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return n, nil
}
