package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
// Секреты могут быть переопределены переменными окружения (см. applyEnvOverrides)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Checkout CheckoutConfig `toml:"checkout"`
	Email    EmailConfig    `toml:"email"`
	Webhook  WebhookConfig  `toml:"webhook"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CheckoutConfig настройки интеграции с hosted checkout провайдером
type CheckoutConfig struct {
	APIBaseURL    string `toml:"api_base_url"`    // API провайдера платежей
	SecretKey     string `toml:"secret_key"`      // секретный ключ API (обычно из env)
	PublicBaseURL string `toml:"public_base_url"` // базовый URL приложения для redirect-ссылок
	Currency      string `toml:"currency"`
	Timeout       int    `toml:"timeout"` // таймаут запросов к провайдеру, секунды
}

// EmailConfig настройки SMTP для отправки подтверждений
type EmailConfig struct {
	SMTPHost string `toml:"smtp_host"`
	SMTPPort int    `toml:"smtp_port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	Sender   string `toml:"sender"`
}

// WebhookConfig настройки входящего webhook от платежного провайдера
type WebhookConfig struct {
	// Token общий секрет, проверяемый в заголовке X-Webhook-Token
	// Пустое значение отключает проверку
	Token string `toml:"token"`
}

// Load читает конфигурацию из toml-файла, применяет env-переопределения
// и валидирует обязательные поля. Отсутствие обязательного поля - ошибка запуска.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides подменяет секреты значениями из окружения, если они заданы
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("CHECKOUT_SECRET_KEY"); v != "" {
		c.Checkout.SecretKey = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		c.Email.Password = v
	}
	if v := os.Getenv("WEBHOOK_TOKEN"); v != "" {
		c.Webhook.Token = v
	}
}

func (c *Config) validate() error {
	required := []struct {
		name string
		ok   bool
	}{
		{"server.http_port", c.Server.HTTPPort > 0},
		{"database.host", c.Database.Host != ""},
		{"database.port", c.Database.Port > 0},
		{"database.user", c.Database.User != ""},
		{"database.dbname", c.Database.DBName != ""},
		{"checkout.api_base_url", c.Checkout.APIBaseURL != ""},
		{"checkout.secret_key", c.Checkout.SecretKey != ""},
		{"checkout.public_base_url", c.Checkout.PublicBaseURL != ""},
		{"checkout.currency", c.Checkout.Currency != ""},
		{"email.smtp_host", c.Email.SMTPHost != ""},
		{"email.smtp_port", c.Email.SMTPPort > 0},
		{"email.sender", c.Email.Sender != ""},
	}

	for _, field := range required {
		if !field.ok {
			return fmt.Errorf("config: required field %s is missing", field.name)
		}
	}

	if c.Metrics.Enabled {
		if c.Metrics.Path == "" || c.Metrics.ServiceName == "" {
			return fmt.Errorf("config: metrics.path and metrics.service_name are required when metrics are enabled")
		}
	}

	return nil
}
