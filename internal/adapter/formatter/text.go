package formatter

import (
	"html"
	"log/slog"
	"strings"

	"rssreader/internal/domain"
)

// TextFormatter реализует интерфейс OutputFormatter для человекочитаемого вывода.
// Каждая строка результата соответствует одной строке вывода.
type TextFormatter struct {
	log *slog.Logger
}

func NewTextFormatter(log *slog.Logger) *TextFormatter {
	return &TextFormatter{
		log: log,
	}
}

// Format формирует текстовое представление ленты: блок канала, затем новости
// в исходном порядке. HTML-сущности декодируются только в заголовках и описаниях.
// Строки Feed и Link выводятся всегда, остальные - только при непустом значении.
func (f *TextFormatter) Format(feed *domain.Feed) ([]string, error) {
	output := []string{
		"Feed: " + html.UnescapeString(feed.Title),
		"Link: " + feed.Link,
	}
	if feed.LastBuildDate != "" {
		output = append(output, "Last Build Date: "+feed.LastBuildDate)
	}
	if feed.PubDate != "" {
		output = append(output, "Publish Date: "+feed.PubDate)
	}
	if feed.Language != "" {
		output = append(output, "Language: "+feed.Language)
	}
	if len(feed.Categories) > 0 {
		output = append(output, "Categories: "+strings.Join(feed.Categories, ", "))
	}
	if feed.ManagingEditor != "" {
		output = append(output, "Editor: "+feed.ManagingEditor)
	}
	if feed.Description != "" {
		output = append(output, "Description: "+html.UnescapeString(feed.Description))
	}
	// Пустая строка завершает блок канала всегда, даже без новостей.
	output = append(output, "")
	for _, item := range feed.Items {
		if item.Title != "" {
			output = append(output, "Title: "+html.UnescapeString(item.Title))
		}
		if item.Author != "" {
			output = append(output, "Author: "+item.Author)
		}
		if item.PubDate != "" {
			output = append(output, "Published: "+item.PubDate)
		}
		if item.Link != "" {
			output = append(output, "Link: "+item.Link)
		}
		if len(item.Categories) > 0 {
			output = append(output, "Categories: "+strings.Join(item.Categories, ", "))
		}
		if item.Description != "" {
			output = append(output, "", html.UnescapeString(item.Description))
		}
		output = append(output, "")
	}
	f.log.Debug("Feed formatted as text", slog.Int("lines", len(output)))
	return output, nil
}
