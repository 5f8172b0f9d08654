package handler

import "net/http"

// View возвращает текущее состояние сессии: страницу, видимые записи и уведомления
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	h.writeView(w, http.StatusOK, s)
}
