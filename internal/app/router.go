package app

import (
	"github.com/avc-dev/url-shortener-ui/internal/handler"
	"github.com/avc-dev/url-shortener-ui/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, issuer middleware.SessionIssuer, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(logger))

	r.Get("/ping", h.Ping)
	r.Handle("/metrics", promhttp.Handler())

	// Все операции интерфейса выполняются в сессии браузера
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Gzip(logger))
		r.Use(middleware.Session(issuer, logger))

		r.Get("/view", h.View)

		r.Post("/urls", h.CreateURL)
		r.Delete("/urls/{id}", h.DeleteURL)
		r.Post("/urls/{id}/undo", h.UndoDelete)

		r.Put("/search", h.Search)
		r.Delete("/search", h.ClearSearch)
		r.Put("/page", h.ChangePage)

		r.Delete("/notifications/{id}", h.DismissNotification)
		r.Delete("/banner", h.DismissBanner)
	})

	return r
}
