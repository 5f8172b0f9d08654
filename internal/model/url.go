package model

import "strings"

// ShortURL представляет запись сокращённой ссылки, полученную от сервера
type ShortURL struct {
	ID          string `json:"id"`
	OriginalURL string `json:"original_url"`
	ShortURL    string `json:"short_url"`
	ShortCode   string `json:"short_code,omitempty"`
}

// Code возвращает последний сегмент пути короткой ссылки
func (u ShortURL) Code() string {
	if u.ShortCode != "" {
		return u.ShortCode
	}
	trimmed := strings.TrimSuffix(u.ShortURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// Page представляет одну страницу списка ссылок вместе с метаданными пагинации
type Page struct {
	Items      []ShortURL `json:"items"`
	Number     int        `json:"page"`
	Size       int        `json:"size"`
	TotalItems int        `json:"total_items"`
	TotalPages int        `json:"total_pages"`
}

// EmptyPage возвращает пустую страницу, которая выставляется при ошибке загрузки
func EmptyPage(number, size int) Page {
	return Page{
		Items:  []ShortURL{},
		Number: number,
		Size:   size,
	}
}

// Query описывает текущий запрос: строку поиска и номер страницы (с единицы)
type Query struct {
	SearchTerm string `json:"search_term"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

// IsSearch сообщает, нужно ли использовать поиск вместо обычного списка
func (q Query) IsSearch() bool {
	return strings.TrimSpace(q.SearchTerm) != ""
}
