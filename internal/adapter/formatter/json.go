package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"rssreader/internal/domain"
)

// channelJSON и itemJSON описывают форму JSON-документа.
// Поле, у которого исходный элемент отсутствует или пуст, полностью
// исключается из вывода; список items присутствует всегда.
type channelJSON struct {
	Title          string     `json:"title,omitempty"`
	Link           string     `json:"link,omitempty"`
	Description    string     `json:"description,omitempty"`
	LastBuildDate  string     `json:"lastBuildDate,omitempty"`
	PubDate        string     `json:"pubDate,omitempty"`
	Language       string     `json:"language,omitempty"`
	ManagingEditor string     `json:"managingEditor,omitempty"`
	Categories     []string   `json:"categories,omitempty"`
	Items          []itemJSON `json:"items"`
}
type itemJSON struct {
	Title       string   `json:"title,omitempty"`
	Author      string   `json:"author,omitempty"`
	PubDate     string   `json:"pubDate,omitempty"`
	Link        string   `json:"link,omitempty"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

// JSONFormatter реализует интерфейс OutputFormatter для структурированного вывода.
// Результат - ровно одна строка с полным JSON-документом.
type JSONFormatter struct {
	log *slog.Logger
}

func NewJSONFormatter(log *slog.Logger) *JSONFormatter {
	return &JSONFormatter{
		log: log,
	}
}

// Format сериализует ленту в JSON с отступом в два пробела.
// HTML-экранирование отключено: не-ASCII символы и разметка передаются как есть.
// Значения не декодируются и не переупорядочиваются.
func (f *JSONFormatter) Format(feed *domain.Feed) ([]string, error) {
	doc := channelJSON{
		Title:          feed.Title,
		Link:           feed.Link,
		Description:    feed.Description,
		LastBuildDate:  feed.LastBuildDate,
		PubDate:        feed.PubDate,
		Language:       feed.Language,
		ManagingEditor: feed.ManagingEditor,
		Categories:     feed.Categories,
		Items:          make([]itemJSON, 0, len(feed.Items)),
	}
	for _, item := range feed.Items {
		doc.Items = append(doc.Items, itemJSON{
			Title:       item.Title,
			Author:      item.Author,
			PubDate:     item.PubDate,
			Link:        item.Link,
			Description: item.Description,
			Categories:  item.Categories,
		})
	}
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		f.log.Error(
			"Error encoding JSON",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to encode feed as JSON: %w", err)
	}
	f.log.Debug("Feed formatted as JSON", slog.Int("items", len(doc.Items)))
	return []string{strings.TrimSuffix(buf.String(), "\n")}, nil
}
