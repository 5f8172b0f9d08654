package notification

import (
	"slices"
	"sync"

	"github.com/avc-dev/url-shortener-ui/internal/model"
)

// Queue хранит упорядоченный список уведомлений, каждое из которых закрывается отдельно.
// Порядок вставки сохраняется, новые уведомления добавляются в конец.
type Queue struct {
	mu    sync.Mutex
	items []model.Notification
}

// NewQueue создает пустую очередь уведомлений
func NewQueue() *Queue {
	return &Queue{}
}

// Push добавляет уведомление в конец очереди.
// Уведомление с уже существующим идентификатором заменяет прежнее на его месте.
func (q *Queue) Push(n model.Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if i := q.indexOf(n.ID); i >= 0 {
		q.items[i] = n
		return
	}
	q.items = append(q.items, n)
}

// Dismiss удаляет уведомление по идентификатору. Возвращает false, если его не было
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	i := q.indexOf(id)
	if i < 0 {
		return false
	}
	q.items = slices.Delete(q.items, i, i+1)
	return true
}

// List возвращает копию уведомлений в порядке добавления
func (q *Queue) List() []model.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	return slices.Clone(q.items)
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) indexOf(id string) int {
	return slices.IndexFunc(q.items, func(n model.Notification) bool {
		return n.ID == id
	})
}
