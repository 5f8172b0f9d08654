package view

import "github.com/avc-dev/url-shortener-ui/internal/model"

// Visible возвращает записи страницы без тех, что скрыты отложенным удалением.
// Функция не хранит состояния и не меняет исходный срез.
func Visible(items []model.ShortURL, pending map[string]struct{}) []model.ShortURL {
	visible := make([]model.ShortURL, 0, len(items))
	for _, item := range items {
		if _, hidden := pending[item.ID]; hidden {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}
