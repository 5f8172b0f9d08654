package model

import "encoding/json"

// Severity задаёт уровень важности уведомления
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification представляет одно уведомление для пользователя.
// Undo заполнен только у уведомлений об удалении.
type Notification struct {
	ID       string   `json:"id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	Undo     func()   `json:"-"`
}

// Undoable сообщает, есть ли у уведомления действие отмены
func (n Notification) Undoable() bool {
	return n.Undo != nil
}

// MarshalJSON отдаёт вместо функции отмены признак её наличия
func (n Notification) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID       string   `json:"id"`
		Message  string   `json:"message"`
		Severity Severity `json:"severity"`
		Undoable bool     `json:"undoable"`
	}{
		ID:       n.ID,
		Message:  n.Message,
		Severity: n.Severity,
		Undoable: n.Undoable(),
	})
}

// DeleteNotificationID возвращает идентификатор уведомления, связанного с удалением записи
func DeleteNotificationID(entityID string) string {
	return "toast-" + entityID
}

// View представляет снимок состояния сессии для слоя отображения
type View struct {
	Query         Query          `json:"query"`
	Page          Page           `json:"page"`
	Visible       []ShortURL     `json:"visible"`
	Loading       bool           `json:"loading"`
	Notifications []Notification `json:"notifications"`
	Banner        *Notification  `json:"banner,omitempty"`
	PendingCount  int            `json:"pending_count"`
}
