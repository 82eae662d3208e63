package formatter

import (
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rssreader/internal/domain"
)

func TestJSONFormatter_Format_SingleDocument(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	formatter := NewJSONFormatter(logger)

	feed := &domain.Feed{
		Title:       "Sample RSS Feed",
		Link:        "https://example.com",
		Description: "A sample RSS feed for testing",
		Language:    "en-us",
		Categories:  []string{"Technology", "News"},
		Items: []domain.Item{
			{Title: "First Article", Link: "https://example.com/article1"},
			{Title: "Second Article"},
		},
	}

	lines, err := formatter.Format(feed)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
	assert.Equal(t, "Sample RSS Feed", decoded["title"])
	assert.Equal(t, "en-us", decoded["language"])
	items, ok := decoded["items"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestJSONFormatter_Format_OmitsAbsentFields(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	formatter := NewJSONFormatter(logger)

	feed := &domain.Feed{
		Title: "Some RSS Channel",
		Link:  "https://some.rss.com",
		Items: []domain.Item{
			{Title: "Only Title"},
		},
	}

	lines, err := formatter.Format(feed)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))

	// Отсутствующие поля канала исключаются целиком, items присутствует всегда.
	assert.Equal(t, []string{"items", "link", "title"}, sortedKeys(decoded))

	items, ok := decoded["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item, ok := items[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{"title"}, sortedKeys(item))
}

func TestJSONFormatter_Format_EmptyChannelExactOutput(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	formatter := NewJSONFormatter(logger)

	feed := &domain.Feed{
		Title: "Some RSS Channel",
		Link:  "https://some.rss.com",
	}

	lines, err := formatter.Format(feed)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	expected := `{
  "title": "Some RSS Channel",
  "link": "https://some.rss.com",
  "items": []
}`
	assert.Equal(t, expected, lines[0])
}

func TestJSONFormatter_Format_NoEscaping(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	formatter := NewJSONFormatter(logger)

	feed := &domain.Feed{
		Title:       "Новости &amp; события",
		Link:        "https://example.com?a=1&b=2",
		Description: "<b>markup</b>",
	}

	lines, err := formatter.Format(feed)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	// Не-ASCII символы и разметка не экранируются, значения не декодируются.
	assert.Contains(t, lines[0], "Новости &amp; события")
	assert.Contains(t, lines[0], "https://example.com?a=1&b=2")
	assert.Contains(t, lines[0], "<b>markup</b>")
	assert.NotContains(t, lines[0], `\u0026`)
	assert.NotContains(t, lines[0], `\u003c`)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
