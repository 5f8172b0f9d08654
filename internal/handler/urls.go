package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type CreateURLRequest struct {
	URL string `json:"url"`
}

// CreateURL сокращает ссылку и возвращает обновлённое состояние
func (h *Handler) CreateURL(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var request CreateURLRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := s.OnCreate(request.URL); err != nil {
		h.handleError(w, s, err)
		return
	}

	h.writeView(w, http.StatusCreated, s)
}

// DeleteURL скрывает запись и откладывает удаление. 202 означает, что удаление ещё можно отменить
func (h *Handler) DeleteURL(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := s.OnDelete(chi.URLParam(r, "id")); err != nil {
		h.handleError(w, s, err)
		return
	}

	h.writeView(w, http.StatusAccepted, s)
}

// UndoDelete отменяет отложенное удаление. Неизвестный идентификатор игнорируется
func (h *Handler) UndoDelete(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	s.OnUndo(chi.URLParam(r, "id"))
	h.writeView(w, http.StatusOK, s)
}
