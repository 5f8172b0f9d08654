package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL используется, если адрес API не задан ни при запуске, ни при сборке
const DefaultAPIBaseURL = "http://localhost:8080"

// DefaultSessionSecret подходит только для локального запуска
const DefaultSessionSecret = "dev-session-secret"

// BuildAPIBaseURL задаётся при сборке:
//
//	go build -ldflags "-X github.com/avc-dev/url-shortener-ui/internal/config.BuildAPIBaseURL=https://api.example.com"
var BuildAPIBaseURL string

// Config содержит настройки приложения
type Config struct {
	ServerAddress      NetworkAddress `env:"SERVER_ADDRESS"`
	APIBaseURL         URLPrefix      `env:"API_BASE_URL" validate:"required,url"`
	SessionSecret      string         `env:"SESSION_SECRET" validate:"required"`
	SessionIdleTimeout time.Duration  `env:"SESSION_IDLE_TIMEOUT" envDefault:"30m" validate:"gt=0"`
	GatewayTimeout     time.Duration  `env:"GATEWAY_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	PageSize           int            `env:"PAGE_SIZE" envDefault:"5" validate:"min=1,max=100"`
	LogLevel           string         `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Load загружает необязательный .env, затем читает окружение и флаги командной строки
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return Parse(os.Args[1:])
}

// Parse собирает конфигурацию из окружения и аргументов. Флаги имеют приоритет над окружением
func Parse(args []string) (*Config, error) {
	cfg := &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8000},
		SessionSecret: DefaultSessionSecret,
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := flag.NewFlagSet("shortener-ui", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.APIBaseURL, "b", "base URL of the URL shortener API")
	fs.StringVar(&cfg.SessionSecret, "s", cfg.SessionSecret, "secret for signing session tokens")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if cfg.APIBaseURL == "" {
		base, err := resolveAPIBaseURL()
		if err != nil {
			return nil, err
		}
		cfg.APIBaseURL = base
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// resolveAPIBaseURL возвращает адрес, заданный при сборке, или адрес по умолчанию
func resolveAPIBaseURL() (URLPrefix, error) {
	var base URLPrefix
	value := BuildAPIBaseURL
	if value == "" {
		value = DefaultAPIBaseURL
	}
	if err := base.Set(value); err != nil {
		return "", fmt.Errorf("invalid build-time API base URL: %w", err)
	}
	return base, nil
}
