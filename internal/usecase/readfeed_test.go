package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rssreader/internal/adapter/formatter"
	"rssreader/internal/adapter/parser"
	"rssreader/internal/domain"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>Sample RSS Feed</title>
<link>https://example.com</link>
<description>A sample RSS feed for testing</description>
<item>
<title>First Article</title>
<link>https://example.com/article1</link>
<description>This is the first article description.</description>
</item>
<item>
<title>Second Article</title>
<link>https://example.com/article2</link>
<description>This is the second article description.</description>
</item>
</channel>
</rss>`

type stubFetcher struct {
	body string
	err  error
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return io.NopCloser(strings.NewReader(s.body)), nil
}

func intPtr(n int) *int { return &n }

func TestReadFeedUseCase_ReadFeed_Text(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewReadFeedUseCase(
		&stubFetcher{body: sampleXML},
		parser.NewXMLParser(logger),
		formatter.NewTextFormatter(logger),
		logger,
	)

	ctx := context.Background()
	lines, err := uc.ReadFeed(ctx, "https://example.com/rss", nil)

	require.NoError(t, err)
	assert.Equal(t, "Feed: Sample RSS Feed", lines[0])
	assert.Equal(t, "Link: https://example.com", lines[1])

	firstIdx, secondIdx := -1, -1
	for i, line := range lines {
		switch line {
		case "Title: First Article":
			firstIdx = i
		case "Title: Second Article":
			secondIdx = i
		}
	}
	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, firstIdx, secondIdx)
}

func TestReadFeedUseCase_ReadFeed_TextWithLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewReadFeedUseCase(
		&stubFetcher{body: sampleXML},
		parser.NewXMLParser(logger),
		formatter.NewTextFormatter(logger),
		logger,
	)

	ctx := context.Background()
	lines, err := uc.ReadFeed(ctx, "https://example.com/rss", intPtr(1))

	require.NoError(t, err)
	titles := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "Title:") {
			titles++
		}
	}
	assert.Equal(t, 1, titles)
	assert.Contains(t, lines, "Title: First Article")
	assert.NotContains(t, lines, "Title: Second Article")
}

func TestReadFeedUseCase_ReadFeed_JSON(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewReadFeedUseCase(
		&stubFetcher{body: sampleXML},
		parser.NewXMLParser(logger),
		formatter.NewJSONFormatter(logger),
		logger,
	)

	ctx := context.Background()
	lines, err := uc.ReadFeed(ctx, "https://example.com/rss", nil)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"title": "Sample RSS Feed"`)
}

func TestReadFeedUseCase_ReadFeed_FetchError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewReadFeedUseCase(
		&stubFetcher{err: errors.New("connection refused")},
		parser.NewXMLParser(logger),
		formatter.NewTextFormatter(logger),
		logger,
	)

	ctx := context.Background()
	lines, err := uc.ReadFeed(ctx, "https://example.com/rss", nil)

	assert.Nil(t, lines)
	var unhandled *domain.UnhandledError
	require.True(t, errors.As(err, &unhandled))
	assert.Contains(t, err.Error(), "failed to fetch RSS feed")
}

func TestReadFeedUseCase_ReadFeed_ContextCancelled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewReadFeedUseCase(
		&stubFetcher{body: sampleXML},
		parser.NewXMLParser(logger),
		formatter.NewTextFormatter(logger),
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lines, err := uc.ReadFeed(ctx, "https://example.com/rss", nil)

	assert.Nil(t, lines)
	// Отмена контекста не относится к ошибкам парсинга и оборачивается
	// как неожиданная ошибка конвейера.
	var unhandled *domain.UnhandledError
	require.True(t, errors.As(err, &unhandled))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestReadFeedUseCase_ReadFeed_ParseErrorKindPreserved(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewReadFeedUseCase(
		&stubFetcher{body: "<invalid>xml</invalid>"},
		parser.NewXMLParser(logger),
		formatter.NewTextFormatter(logger),
		logger,
	)

	ctx := context.Background()
	lines, err := uc.ReadFeed(ctx, "https://example.com/rss", nil)

	assert.Nil(t, lines)
	var feedErr *domain.InvalidFeedError
	assert.True(t, errors.As(err, &feedErr))
	var unhandled *domain.UnhandledError
	assert.False(t, errors.As(err, &unhandled))
}
