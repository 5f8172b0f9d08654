package handler

import (
	"encoding/json"
	"net/http"
)

type SearchRequest struct {
	Term string `json:"term"`
}

type PageRequest struct {
	Page int `json:"page"`
}

// Search меняет поисковый запрос. Загрузка выполняется после паузы в вводе
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var request SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.badRequest(w, r, err)
		return
	}

	s.OnSearchChange(request.Term)
	h.writeView(w, http.StatusAccepted, s)
}

func (h *Handler) ClearSearch(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	s.OnSearchClear()
	h.writeView(w, http.StatusAccepted, s)
}

// ChangePage загружает страницу с номером, начиная с 1
func (h *Handler) ChangePage(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var request PageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if err := s.OnPageChange(request.Page); err != nil {
		h.handleError(w, s, err)
		return
	}

	h.writeView(w, http.StatusOK, s)
}
