package notification

import (
	"testing"

	"github.com/avc-dev/url-shortener-ui/internal/model"
	"github.com/stretchr/testify/assert"
)

func ids(items []model.Notification) []string {
	result := make([]string, 0, len(items))
	for _, n := range items {
		result = append(result, n.ID)
	}
	return result
}

// TestQueue_PushKeepsInsertionOrder проверяет добавление в конец без переупорядочивания
func TestQueue_PushKeepsInsertionOrder(t *testing.T) {
	// Arrange
	q := NewQueue()

	// Act
	q.Push(model.Notification{ID: "a", Message: "first"})
	q.Push(model.Notification{ID: "b", Message: "second"})
	q.Push(model.Notification{ID: "c", Message: "third"})

	// Assert
	assert.Equal(t, []string{"a", "b", "c"}, ids(q.List()))
	assert.Equal(t, 3, q.Len())
}

// TestQueue_PushReplacesInPlace проверяет замену уведомления с тем же идентификатором
func TestQueue_PushReplacesInPlace(t *testing.T) {
	q := NewQueue()
	q.Push(model.Notification{ID: "a", Message: "first"})
	q.Push(model.Notification{ID: "b", Message: "second"})

	q.Push(model.Notification{ID: "a", Message: "replaced"})

	items := q.List()
	assert.Equal(t, []string{"a", "b"}, ids(items))
	assert.Equal(t, "replaced", items[0].Message)
}

// TestQueue_SameMessageIsNotDeduplicated проверяет, что одинаковый текст не схлопывается
func TestQueue_SameMessageIsNotDeduplicated(t *testing.T) {
	q := NewQueue()

	q.Push(model.Notification{ID: "a", Message: "same"})
	q.Push(model.Notification{ID: "b", Message: "same"})

	assert.Equal(t, 2, q.Len())
}

func TestQueue_Dismiss(t *testing.T) {
	tests := []struct {
		name      string
		dismissID string
		wantFound bool
		wantIDs   []string
	}{
		{
			name:      "middle item",
			dismissID: "b",
			wantFound: true,
			wantIDs:   []string{"a", "c"},
		},
		{
			name:      "absent item is a no-op",
			dismissID: "zzz",
			wantFound: false,
			wantIDs:   []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			q := NewQueue()
			for _, id := range []string{"a", "b", "c"} {
				q.Push(model.Notification{ID: id})
			}

			// Act
			found := q.Dismiss(tt.dismissID)

			// Assert
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantIDs, ids(q.List()))
		})
	}
}

// TestQueue_ListReturnsCopy проверяет, что снимок не меняется вместе с очередью
func TestQueue_ListReturnsCopy(t *testing.T) {
	q := NewQueue()
	q.Push(model.Notification{ID: "a"})

	snapshot := q.List()
	q.Dismiss("a")

	assert.Len(t, snapshot, 1)
	assert.Zero(t, q.Len())
}
