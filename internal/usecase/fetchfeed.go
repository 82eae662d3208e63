package usecase

import (
	"context"
	"io"

	"rssreader/internal/domain"
)

// FeedFetcher определяет интерфейс для загрузки данных RSS-ленты из внешнего источника.
// Возвращает io.ReadCloser который должен быть закрыт после использования.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// FeedParser определяет интерфейс для парсинга RSS-данных в доменную модель.
// limit ограничивает количество новостей; nil означает отсутствие ограничения.
type FeedParser interface {
	Parse(ctx context.Context, reader io.Reader, limit *int) (*domain.Feed, error)
}

// OutputFormatter определяет интерфейс для представления ленты в виде строк вывода.
// Реализации выбирают форму вывода: текст или JSON.
type OutputFormatter interface {
	Format(feed *domain.Feed) ([]string, error)
}
