package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DismissNotification закрывает уведомление об удалении. Само удаление не отменяется
func (h *Handler) DismissNotification(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	s.OnDismissNotification(chi.URLParam(r, "id"))
	h.writeView(w, http.StatusOK, s)
}

func (h *Handler) DismissBanner(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	s.OnDismissBanner()
	h.writeView(w, http.StatusOK, s)
}
