package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newsAPIBody = `{
  "status": "ok",
  "totalResults": 2,
  "articles": [
    {
      "source": {"id": "techcrunch", "name": "TechCrunch"},
      "title": "OpenAI launches GPT-5",
      "description": "The release was announced today",
      "url": "https://example.com/gpt5",
      "publishedAt": "2024-05-01T10:00:00Z"
    },
    {
      "source": {"id": null, "name": null},
      "title": "Untitled source",
      "description": null,
      "url": "https://example.com/unknown",
      "publishedAt": "2024-05-01T11:00:00Z"
    }
  ]
}`

// Test helper: a client pointed at a test server with a fixed clock
func newTestNewsAPIClient(endpoint, key string) *NewsAPIClient {
	client := NewNewsAPIClient(NewsAPIConfig{APIKey: key, Endpoint: endpoint})
	client.now = func() time.Time { return time.Date(2024, 5, 8, 12, 0, 0, 0, time.UTC) }
	return client
}

// TestNewsAPIClient_Fetch verifies request parameters and field mapping
func TestNewsAPIClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, NewsAPIQuery, q.Get("q"))
		assert.Equal(t, "2024-05-01", q.Get("from"), "from should be 7 days back")
		assert.Equal(t, "publishedAt", q.Get("sortBy"))
		assert.Equal(t, "secret", q.Get("apiKey"))
		assert.Equal(t, "100", q.Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(newsAPIBody))
	}))
	defer server.Close()

	result := newTestNewsAPIClient(server.URL, "secret").Fetch(context.Background(), DefaultLookback)

	require.True(t, result.OK())
	require.Len(t, result.Articles, 2)
	assert.Equal(t, "OpenAI launches GPT-5", result.Articles[0].Title)
	assert.Equal(t, "The release was announced today", result.Articles[0].Description)
	assert.Equal(t, "https://example.com/gpt5", result.Articles[0].URL)
	assert.Equal(t, "2024-05-01T10:00:00Z", result.Articles[0].PublishedAt)
	assert.Equal(t, "TechCrunch", result.Articles[0].Source)
	assert.Equal(t, "Unknown", result.Articles[1].Source, "missing source name should map to Unknown")
	assert.Equal(t, "", result.Articles[1].Description)
}

// TestNewsAPIClient_NoKey verifies no request is made without an API key
func TestNewsAPIClient_NoKey(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	result := newTestNewsAPIClient(server.URL, "").Fetch(context.Background(), DefaultLookback)

	assert.True(t, result.OK(), "missing key is not an error")
	assert.Empty(t, result.Articles)
	assert.Equal(t, int32(0), calls.Load())
}

// TestNewsAPIClient_Failures verifies every failure degrades to an empty,
// failed result
func TestNewsAPIClient_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"status":"error","code":"apiKeyInvalid"}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"articles": [`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			result := newTestNewsAPIClient(server.URL, "secret").Fetch(context.Background(), DefaultLookback)

			assert.False(t, result.OK())
			assert.Empty(t, result.Articles)
			assert.Equal(t, NewsAPISourceName, result.Source)
		})
	}
}

// TestNewsAPIClient_Unreachable verifies transport errors are captured
func TestNewsAPIClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	result := newTestNewsAPIClient(endpoint, "secret").Fetch(context.Background(), DefaultLookback)

	assert.False(t, result.OK())
	assert.Empty(t, result.Articles)
}
