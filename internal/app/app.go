package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/url-shortener-ui/internal/config"
	"github.com/avc-dev/url-shortener-ui/internal/session"
	"go.uber.org/zap"
)

// App представляет BFF-сервер интерфейса сокращателя ссылок
type App struct {
	config   *config.Config
	logger   *zap.Logger
	registry *session.Registry
	router   http.Handler
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	registry, router := initDependencies(cfg, logger)

	return &App{
		config:   cfg,
		logger:   logger,
		registry: registry,
		router:   router,
	}, nil
}

// Run запускает приложение и блокируется до SIGINT или SIGTERM
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.start(ctx)
}

// Close закрывает оставшиеся сессии и сбрасывает буфер логгера
func (a *App) Close() {
	if a.registry != nil {
		a.registry.CloseAll()
	}
	_ = a.logger.Sync()
}

func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel

	return cfg.Build()
}
