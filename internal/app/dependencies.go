package app

import (
	"net/http"

	"github.com/avc-dev/url-shortener-ui/internal/config"
	"github.com/avc-dev/url-shortener-ui/internal/gateway"
	"github.com/avc-dev/url-shortener-ui/internal/handler"
	"github.com/avc-dev/url-shortener-ui/internal/scheduler"
	"github.com/avc-dev/url-shortener-ui/internal/service"
	"github.com/avc-dev/url-shortener-ui/internal/session"
	"github.com/avc-dev/url-shortener-ui/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*session.Registry, http.Handler) {
	gw := gateway.New(cfg.APIBaseURL.String(), cfg.GatewayTimeout, logger.Named("gateway"))
	logger.Info("Using URL shortener API", zap.String("base_url", cfg.APIBaseURL.String()))

	registry := newRegistry(gw, scheduler.New(), cfg, logger)
	authService := service.NewAuthService(cfg.SessionSecret)
	h := handler.New(sessionProvider(registry), logger)

	return registry, newRouter(h, authService, logger)
}

func newRegistry(gw usecase.Gateway, s scheduler.Scheduler, cfg *config.Config, logger *zap.Logger) *session.Registry {
	factory := func(id string) *usecase.Session {
		return usecase.NewSession(id, gw, s, cfg.PageSize, logger.Named("session"))
	}
	return session.NewRegistry(factory, cfg.SessionIdleTimeout, logger.Named("registry"))
}

// sessionProvider открывает сессии обработчикам через реестр
func sessionProvider(registry *session.Registry) handler.SessionProvider {
	return handler.SessionProviderFunc(func(id string) (handler.URLSession, error) {
		s, err := registry.Get(id)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}
