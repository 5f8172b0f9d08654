package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/url-shortener-ui/internal/middleware"
	"github.com/avc-dev/url-shortener-ui/internal/model"
	"github.com/avc-dev/url-shortener-ui/internal/query"
	"github.com/avc-dev/url-shortener-ui/internal/usecase"
	"go.uber.org/zap"
)

//go:generate mockery --name URLSession

// URLSession операции пользовательской сессии, доступные через HTTP
type URLSession interface {
	OnCreate(text string) error
	OnDelete(id string) error
	OnUndo(id string)
	OnSearchChange(term string)
	OnSearchClear()
	OnPageChange(n int) error
	OnDismissNotification(id string)
	OnDismissBanner()
	View() model.View
}

// SessionProvider возвращает сессию по её идентификатору
type SessionProvider interface {
	Session(id string) (URLSession, error)
}

// SessionProviderFunc адаптер функции к SessionProvider
type SessionProviderFunc func(id string) (URLSession, error)

func (f SessionProviderFunc) Session(id string) (URLSession, error) {
	return f(id)
}

type Handler struct {
	sessions SessionProvider
	logger   *zap.Logger
}

func New(sessions SessionProvider, logger *zap.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

type errorResponse struct {
	Error string      `json:"error"`
	View  *model.View `json:"view,omitempty"`
}

// session находит сессию запроса. При неудаче ответ уже записан
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (URLSession, bool) {
	sessionID, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		h.logger.Debug("session ID not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	s, err := h.sessions.Session(sessionID)
	if err != nil {
		h.logger.Warn("session unavailable", zap.String("session_id", sessionID), zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return nil, false
	}

	return s, true
}

// writeView отвечает снимком состояния сессии
func (h *Handler) writeView(w http.ResponseWriter, status int, s URLSession) {
	h.writeJSON(w, status, s.View())
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// handleError переводит ошибку сессии в HTTP-статус и отвечает текущим состоянием
func (h *Handler) handleError(w http.ResponseWriter, s URLSession, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrEmptyURL), errors.Is(err, query.ErrInvalidPage):
		status = http.StatusBadRequest
	case errors.Is(err, usecase.ErrDuplicateURL):
		status = http.StatusConflict
	case errors.Is(err, usecase.ErrNotOnPage):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrServiceUnavailable):
		status = http.StatusBadGateway
	default:
		h.logger.Error("unexpected session error", zap.Error(err))
	}

	view := s.View()
	h.writeJSON(w, status, errorResponse{Error: err.Error(), View: &view})
}

// badRequest отвечает на некорректное тело запроса
func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Warn("failed to decode JSON request",
		zap.Error(err),
		zap.String("uri", r.RequestURI),
	)
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
}
