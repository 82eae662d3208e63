package app

import (
	"context"
	"fmt"
	"log/slog"

	"rssreader/internal/adapter/fetcher"
	"rssreader/internal/adapter/formatter"
	"rssreader/internal/adapter/parser"
	"rssreader/internal/config"
	"rssreader/internal/logger"
	"rssreader/internal/usecase"
)

// App представляет приложение RSS Reader.
// Связывает конфигурацию, логгер, загрузчик и парсер; форматтер выбирается
// на каждый запуск по запрошенному режиму вывода.
type App struct {
	config  *config.Config
	logger  *slog.Logger
	fetcher usecase.FeedFetcher
	parser  usecase.FeedParser
}

// Options задают параметры одного запуска, полученные из аргументов командной строки.
// Limit равный nil означает, что пользователь не задал ограничение;
// в этом случае действует app.default_limit из конфигурации.
type Options struct {
	JSON  bool
	Limit *int
}

// New создает и инициализирует новый экземпляр приложения RSS Reader.
// Выполняет настройку логгера и инициализацию адаптеров загрузки и парсинга.
// Возвращает ошибку в случае сбоя любой из инициализационных процедур.
func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	slog.SetDefault(appLogger)

	httpFetcher := fetcher.NewHTTPFetcher(cfg.HTTP, appLogger)

	xmlParser := parser.NewXMLParser(appLogger)

	return &App{
		config:  cfg,
		logger:  appLogger,
		fetcher: httpFetcher,
		parser:  xmlParser,
	}, nil
}

// Run читает RSS-ленту по указанному URL и возвращает строки вывода.
// Выбирает форматтер по режиму, применяет лимит по умолчанию из конфигурации
// и делегирует выполнение конвейеру UseCase.
func (a *App) Run(ctx context.Context, url string, opts Options) ([]string, error) {
	var outputFormatter usecase.OutputFormatter
	if opts.JSON {
		outputFormatter = formatter.NewJSONFormatter(a.logger)
	} else {
		outputFormatter = formatter.NewTextFormatter(a.logger)
	}

	limit := opts.Limit
	if limit == nil && a.config.App.DefaultLimit > 0 {
		n := a.config.App.DefaultLimit
		limit = &n
	}

	feedReader := usecase.NewReadFeedUseCase(a.fetcher, a.parser, outputFormatter, a.logger)
	return feedReader.ReadFeed(ctx, url, limit)
}
