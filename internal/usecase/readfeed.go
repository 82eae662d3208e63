package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rssreader/internal/domain"
)

// ReadFeedUseCase реализует бизнес-логику чтения RSS-ленты.
// Координирует процесс загрузки, парсинга и форматирования вывода.
type ReadFeedUseCase struct {
	fetcher   FeedFetcher
	parser    FeedParser
	formatter OutputFormatter
	log       *slog.Logger
}

// NewReadFeedUseCase создает новый экземпляр UseCase для чтения RSS-ленты.
// Принимает зависимости: загрузчик, парсер, форматтер и логгер.
func NewReadFeedUseCase(
	fetcher FeedFetcher,
	parser FeedParser,
	formatter OutputFormatter,
	log *slog.Logger,
) *ReadFeedUseCase {
	return &ReadFeedUseCase{
		fetcher:   fetcher,
		parser:    parser,
		formatter: formatter,
		log:       log,
	}
}

// ReadFeed выполняет полный цикл чтения RSS-ленты: получение, парсинг и форматирование.
// Измеряет время выполнения, логирует этапы процесса и обрабатывает ошибки на каждом этапе.
// Ошибки некорректного XML и отсутствующего channel сохраняют свой вид; сбой загрузки
// и любая другая ошибка конвейера, включая отмену контекста, оборачиваются
// в *domain.UnhandledError. При ошибке строки вывода не возвращаются.
func (uc *ReadFeedUseCase) ReadFeed(ctx context.Context, url string, limit *int) ([]string, error) {
	start := time.Now()
	log := uc.log.With(
		slog.String("component", "feed-reader"),
		slog.String("url", url),
	)

	log.Info("Reading feed started")

	reader, err := uc.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Error("Feed fetch failed",
			slog.String("stage", "fetch"),
			slog.Any("error", err),
		)
		return nil, &domain.UnhandledError{Err: fmt.Errorf("failed to fetch RSS feed: %w", err)}
	}
	defer reader.Close()

	log.Debug("Feed fetched successfully", slog.String("stage", "fetch"))

	feed, err := uc.parser.Parse(ctx, reader, limit)
	if err != nil {
		log.Error("Feed parsing failed",
			slog.String("stage", "parse"),
			slog.Any("error", err),
		)
		var xmlErr *domain.InvalidXMLError
		var feedErr *domain.InvalidFeedError
		if errors.As(err, &xmlErr) || errors.As(err, &feedErr) {
			return nil, err
		}
		return nil, &domain.UnhandledError{Err: err}
	}

	log.Debug("Feed parsed successfully",
		slog.String("stage", "parse"),
		slog.Int("items_parsed", len(feed.Items)),
	)

	lines, err := uc.formatter.Format(feed)
	if err != nil {
		log.Error("Feed formatting failed",
			slog.String("stage", "format"),
			slog.Any("error", err),
		)
		return nil, &domain.UnhandledError{Err: fmt.Errorf("failed to format feed: %w", err)}
	}

	duration := time.Since(start)
	log.Info("Reading feed completed successfully",
		slog.Int("items_found", len(feed.Items)),
		slog.Int("lines", len(lines)),
		slog.Duration("duration", duration),
	)

	return lines, nil
}
