package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sameercsai/ai-learning-hub/config"
)

// TestStoreExists verifies a missing sqlite file is detected without
// creating it
func TestStoreExists(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "ai_news.db")
	cfg := config.Defaults()
	cfg.DBDSN = dsn

	assert.False(t, storeExists(cfg))
	assert.NoFileExists(t, dsn)

	require.NoError(t, os.WriteFile(dsn, nil, 0o644))
	assert.True(t, storeExists(cfg))

	cfg.DBDriver = "postgres"
	cfg.DBDSN = "postgres://localhost/ai_hub"
	assert.True(t, storeExists(cfg))
}
