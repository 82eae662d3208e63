package parser

import (
	"context"
	"encoding/xml"
	"io"
	"log/slog"

	"rssreader/internal/domain"
)

type rssXML struct {
	Channels []channelXML `xml:"channel"`
}
type channelXML struct {
	Title          string    `xml:"title"`
	Link           string    `xml:"link"`
	Description    string    `xml:"description"`
	LastBuildDate  string    `xml:"lastBuildDate"`
	PubDate        string    `xml:"pubDate"`
	Language       string    `xml:"language"`
	ManagingEditor string    `xml:"managingEditor"`
	Categories     []string  `xml:"category"`
	Items          []itemXML `xml:"item"`
}
type itemXML struct {
	Title       string   `xml:"title"`
	Author      string   `xml:"author"`
	PubDate     string   `xml:"pubDate"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	Categories  []string `xml:"category"`
}

// XMLParser реализует интерфейс FeedParser поверх encoding/xml.
type XMLParser struct {
	log *slog.Logger
}

func NewXMLParser(log *slog.Logger) *XMLParser {
	return &XMLParser{
		log: log,
	}
}

// Parse читает XML-документ и извлекает из него RSS-ленту.
// Некорректный XML возвращается как *domain.InvalidXMLError, документ без
// элемента channel - как *domain.InvalidFeedError. При нескольких элементах
// channel используется первый. limit ограничивает количество новостей:
// nil сохраняет все, ноль и отрицательные значения дают пустой список.
func (p *XMLParser) Parse(ctx context.Context, reader io.Reader, limit *int) (*domain.Feed, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rss rssXML
	decoder := xml.NewDecoder(reader)
	if err := decoder.Decode(&rss); err != nil {
		p.log.Error(
			"Error decoding XML",
			slog.Any("error", err),
		)
		return nil, &domain.InvalidXMLError{Err: err}
	}
	if len(rss.Channels) == 0 {
		p.log.Error("No channel element in document")
		return nil, &domain.InvalidFeedError{}
	}
	channel := rss.Channels[0]
	items := channel.Items
	if limit != nil {
		n := *limit
		if n < 0 {
			n = 0
		}
		if n < len(items) {
			items = items[:n]
		}
	}
	feed := domain.Feed{
		Title:          channel.Title,
		Link:           channel.Link,
		Description:    channel.Description,
		LastBuildDate:  channel.LastBuildDate,
		PubDate:        channel.PubDate,
		Language:       channel.Language,
		ManagingEditor: channel.ManagingEditor,
		Categories:     channel.Categories,
		Items:          make([]domain.Item, 0, len(items)),
	}
	for _, itemDTO := range items {
		item := domain.Item{
			Title:       itemDTO.Title,
			Author:      itemDTO.Author,
			PubDate:     itemDTO.PubDate,
			Link:        itemDTO.Link,
			Description: itemDTO.Description,
			Categories:  itemDTO.Categories,
		}
		feed.Items = append(feed.Items, item)
	}
	p.log.Debug(
		"Feed extracted",
		slog.String("title", feed.Title),
		slog.Int("items", len(feed.Items)),
	)
	return &feed, nil
}
