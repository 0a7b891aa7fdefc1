package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sameercsai/ai-learning-hub/articles"
)

func TestWrapText(t *testing.T) {
	wrapped := wrapText("one two three four five six", 9)

	assert.Equal(t, "one two\nthree\nfour five\nsix", wrapped)
	assert.Equal(t, "", wrapText("", 10))
}

func TestEllipsis(t *testing.T) {
	assert.Equal(t, "short", ellipsis("short", 10))

	long := strings.Repeat("ü", 20)
	got := ellipsis(long, 10)
	assert.Equal(t, strings.Repeat("ü", 7)+"...", got)
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "Unknown", sourceName(articles.Article{}))
	assert.Equal(t, "Wired", sourceName(articles.Article{Source: "Wired"}))
}
