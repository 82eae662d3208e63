package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DefaultPath - путь к файлу конфигурации по умолчанию.
// Отсутствие файла по этому пути не является ошибкой: используются значения по умолчанию.
const DefaultPath = "config.json"

// defaultHTTPTimeout - таймаут HTTP-клиента по умолчанию.
// Единственный источник значения для New и для ClientTimeout.
const defaultHTTPTimeout = 15 * time.Second

// Config представляет основную конфигурацию приложения RSS Reader.
// Содержит настройки логгера, HTTP-клиента и бизнес-логики.
type Config struct {
	Logger LoggerConfig `json:"logger"`
	HTTP   HTTPConfig   `json:"http"`
	App    AppConfig    `json:"app"`
}

// LoggerConfig содержит настройки системы логирования.
// Определяет уровень детализации логов (debug, info, warn, error).
type LoggerConfig struct {
	Level string `json:"level"`
}

// HTTPConfig содержит настройки HTTP-клиента для загрузки RSS-лент.
// Таймаут задается строкой в формате time.ParseDuration.
type HTTPConfig struct {
	Timeout   string `json:"timeout"`
	UserAgent string `json:"user_agent"`
}

// AppConfig содержит настройки бизнес-логики приложения.
// DefaultLimit ограничивает количество новостей, когда лимит не задан флагом;
// ноль означает отсутствие ограничения.
type AppConfig struct {
	DefaultLimit int `json:"default_limit"`
}

// ClientTimeout возвращает таймаут HTTP-клиента как time.Duration.
// Корректность строки гарантируется вызовом Validate при загрузке;
// для конфигурации, не прошедшей Validate, возвращается defaultHTTPTimeout.
func (c *HTTPConfig) ClientTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return defaultHTTPTimeout
	}
	return d
}

// Load загружает конфигурацию из JSON-файла по указанному пути.
// Возвращает ошибку если файл не существует, недоступен для чтения
// или содержит некорректный JSON. Использует значения по умолчанию
// для незаданных полей конфигурации.
func Load(configPath string) (*Config, error) {
	cfg := New()
	fileData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	if err := json.Unmarshal(fileData, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse JSON from file %s: %w", configPath, err)
	}
	return cfg, nil
}

// New создает новый экземпляр Config с значениями по умолчанию.
func New() *Config {
	return &Config{
		Logger: LoggerConfig{
			Level: "info",
		},
		HTTP: HTTPConfig{
			Timeout:   defaultHTTPTimeout.String(),
			UserAgent: "rssreader/1.0",
		},
		App: AppConfig{
			DefaultLimit: 0,
		},
	}
}

// Validate проверяет корректность конфигурации.
// Проверяет уровень логирования, формат таймаута, user agent и лимит новостей.
// Возвращает ошибку с описанием первой найденной проблемы.
func (c *Config) Validate() error {
	switch c.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logger.level: %q", c.Logger.Level)
	}
	if _, err := time.ParseDuration(c.HTTP.Timeout); err != nil {
		return fmt.Errorf("invalid http.timeout: %w", err)
	}
	if c.HTTP.UserAgent == "" {
		return fmt.Errorf("http.user_agent must not be empty")
	}
	if c.App.DefaultLimit < 0 {
		return fmt.Errorf("app.default_limit must not be negative")
	}
	return nil
}
