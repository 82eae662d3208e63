package domain

// Item представляет отдельную новость в RSS-ленте.
// Отсутствующий элемент или элемент без текста хранится как пустая строка.
type Item struct {
	Title       string
	Author      string
	PubDate     string
	Link        string
	Description string
	Categories  []string
}

// Feed представляет полную RSS-ленту с метаданными канала и списком новостей.
// Порядок Items совпадает с порядком элементов item в исходном документе.
type Feed struct {
	Title          string
	Link           string
	Description    string
	LastBuildDate  string
	PubDate        string
	Language       string
	ManagingEditor string
	Categories     []string
	Items          []Item
}
