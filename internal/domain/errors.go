package domain

// InvalidXMLError возвращается, когда документ не удалось разобрать как корректный XML.
// Содержит исходную ошибку декодера.
type InvalidXMLError struct {
	Err error
}

func (e *InvalidXMLError) Error() string {
	return "invalid XML document: " + e.Err.Error()
}

func (e *InvalidXMLError) Unwrap() error { return e.Err }

// InvalidFeedError возвращается, когда XML корректен, но документ не содержит
// элемента channel и потому не является RSS-лентой.
type InvalidFeedError struct{}

func (e *InvalidFeedError) Error() string {
	return "invalid RSS feed: no channel element found"
}

// UnhandledError оборачивает любую другую ошибку конвейера: сбой загрузки ленты
// или неожиданную ошибку обработки. Содержит описание исходной причины.
type UnhandledError struct {
	Err error
}

func (e *UnhandledError) Error() string {
	return "unexpected error: " + e.Err.Error()
}

func (e *UnhandledError) Unwrap() error { return e.Err }
