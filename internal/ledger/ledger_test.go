package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/url-shortener-ui/internal/mocks"
	"github.com/avc-dev/url-shortener-ui/internal/model"
	"github.com/avc-dev/url-shortener-ui/internal/notification"
	"github.com/avc-dev/url-shortener-ui/internal/scheduler/schedulertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type loadCounter struct {
	mu    sync.Mutex
	count int
}

func (c *loadCounter) Load() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
}

func (c *loadCounter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

type alert struct {
	message  string
	severity model.Severity
}

type alertRecorder struct {
	mu     sync.Mutex
	alerts []alert
}

func (r *alertRecorder) Show(message string, severity model.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, alert{message: message, severity: severity})
}

type testLedger struct {
	*Ledger
	gateway *mocks.MockGateway
	queue   *notification.Queue
	loader  *loadCounter
	alerts  *alertRecorder
	clock   *schedulertest.Fake
}

func newTestLedger(t *testing.T) *testLedger {
	t.Helper()
	tl := &testLedger{
		gateway: mocks.NewMockGateway(t),
		queue:   notification.NewQueue(),
		loader:  &loadCounter{},
		alerts:  &alertRecorder{},
		clock:   schedulertest.New(time.Unix(0, 0)),
	}
	tl.Ledger = New(tl.gateway, tl.queue, tl.loader, tl.alerts, tl.clock, zap.NewNop())
	t.Cleanup(tl.Ledger.Close)
	return tl
}

var snapshot = model.ShortURL{
	ID:          "42",
	OriginalURL: "https://example.com/long",
	ShortURL:    "http://localhost:8080/abc12345",
	ShortCode:   "abc12345",
}

// TestLedger_RequestDeletion проверяет мгновенное скрытие и уведомление с отменой
func TestLedger_RequestDeletion(t *testing.T) {
	// Arrange
	l := newTestLedger(t)

	// Act
	l.RequestDeletion("42", snapshot)

	// Assert
	assert.True(t, l.IsPending("42"))
	pending, ok := l.Pending("42")
	require.True(t, ok)
	assert.Equal(t, snapshot, pending.Snapshot)
	assert.Equal(t, time.Unix(0, 0), pending.ScheduledAt)
	assert.Equal(t, GracePeriod, pending.Grace)

	items := l.queue.List()
	require.Len(t, items, 1)
	assert.Equal(t, "toast-42", items[0].ID)
	assert.Equal(t, "URL deleted: abc12345", items[0].Message)
	assert.Equal(t, model.SeveritySuccess, items[0].Severity)
	assert.True(t, items[0].Undoable())

	l.gateway.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// TestLedger_GraceWindowHappyPath проверяет удаление на сервере ровно через 5 секунд
func TestLedger_GraceWindowHappyPath(t *testing.T) {
	// Arrange
	l := newTestLedger(t)
	l.RequestDeletion("42", snapshot)

	// Act & Assert - до истечения окна запроса нет
	l.clock.Advance(GracePeriod - time.Millisecond)
	l.gateway.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	l.gateway.EXPECT().Delete(mock.Anything, "42").Return(nil).Once()
	l.clock.Advance(time.Millisecond)

	assert.False(t, l.IsPending("42"))
	assert.Zero(t, l.queue.Len())
	assert.Equal(t, 1, l.loader.Count())
	assert.Empty(t, l.alerts.alerts)

	// повторное срабатывание невозможно
	l.clock.Advance(time.Minute)
}

// TestLedger_SinglePendingPerID проверяет замену предыдущего удаления той же записи
func TestLedger_SinglePendingPerID(t *testing.T) {
	// Arrange
	l := newTestLedger(t)
	second := snapshot
	second.OriginalURL = "https://example.com/updated"

	l.RequestDeletion("42", snapshot)
	l.clock.Advance(3 * time.Second)

	// Act
	l.RequestDeletion("42", second)

	// Assert
	assert.Equal(t, 1, l.Len())
	pending, _ := l.Pending("42")
	assert.Equal(t, second, pending.Snapshot)
	assert.Equal(t, 1, l.queue.Len(), "уведомление заменяется, а не дублируется")

	// первый таймер истёк бы в 5с - запроса нет
	l.clock.Advance(2 * time.Second)
	l.gateway.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	// второй таймер срабатывает в 8с ровно один раз
	l.gateway.EXPECT().Delete(mock.Anything, "42").Return(nil).Once()
	l.clock.Advance(3 * time.Second)
	assert.Zero(t, l.Len())
}

// TestLedger_UndoWithoutPendingIsNoop проверяет, что отмена без удаления ничего не меняет
func TestLedger_UndoWithoutPendingIsNoop(t *testing.T) {
	// Arrange
	l := newTestLedger(t)
	l.queue.Push(model.Notification{ID: "other", Message: "unrelated"})

	// Act
	l.Undo("42")

	// Assert
	assert.Zero(t, l.loader.Count())
	assert.Equal(t, 1, l.queue.Len())
	assert.Empty(t, l.alerts.alerts)
}

// TestLedger_Undo проверяет отмену удаления в окне ожидания
func TestLedger_Undo(t *testing.T) {
	// Arrange
	l := newTestLedger(t)
	l.RequestDeletion("42", snapshot)
	l.clock.Advance(2 * time.Second)

	// Act
	l.Undo("42")

	// Assert
	assert.False(t, l.IsPending("42"))
	assert.Zero(t, l.queue.Len())
	assert.Equal(t, 1, l.loader.Count())
	assert.Zero(t, l.clock.Pending())

	l.clock.Advance(time.Minute)
	l.gateway.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// TestLedger_UndoThroughNotification проверяет действие отмены из уведомления
func TestLedger_UndoThroughNotification(t *testing.T) {
	l := newTestLedger(t)
	l.RequestDeletion("42", snapshot)

	l.queue.List()[0].Undo()

	assert.False(t, l.IsPending("42"))
	assert.Equal(t, 1, l.loader.Count())
}

// TestLedger_DeleteFailure проверяет, что ошибка удаления не оставляет скрытую запись
func TestLedger_DeleteFailure(t *testing.T) {
	// Arrange
	l := newTestLedger(t)
	l.gateway.EXPECT().Delete(mock.Anything, "42").Return(assert.AnError).Once()
	l.RequestDeletion("42", snapshot)

	// Act
	l.clock.Advance(GracePeriod)

	// Assert
	assert.False(t, l.IsPending("42"))
	assert.Zero(t, l.queue.Len())
	assert.Equal(t, []alert{{message: MsgDeleteFailed, severity: model.SeverityError}}, l.alerts.alerts)
	assert.Equal(t, 1, l.loader.Count())
}

// TestLedger_UndoWhileDeleteInFlight проверяет, что гонка отмены и удаления не даёт ошибки
func TestLedger_UndoWhileDeleteInFlight(t *testing.T) {
	// Arrange
	l := newTestLedger(t)
	l.gateway.EXPECT().
		Delete(mock.Anything, "42").
		RunAndReturn(func(ctx context.Context, id string) error {
			l.Undo(id)
			return nil
		}).
		Once()
	l.RequestDeletion("42", snapshot)

	// Act
	l.clock.Advance(GracePeriod)

	// Assert - перезагрузка только одна, от завершения удаления
	assert.Equal(t, 1, l.loader.Count())
	assert.Empty(t, l.alerts.alerts)
	assert.Zero(t, l.Len())
}

// TestLedger_Close проверяет отмену всех таймеров при закрытии
func TestLedger_Close(t *testing.T) {
	// Arrange
	l := newTestLedger(t)
	l.RequestDeletion("1", snapshot)
	l.RequestDeletion("2", snapshot)

	// Act
	l.Close()
	l.clock.Advance(time.Minute)

	// Assert
	assert.Zero(t, l.Len())
	assert.Zero(t, l.clock.Pending())
	l.gateway.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	l.RequestDeletion("3", snapshot)
	assert.Zero(t, l.Len())
}

// TestLedger_CloseWhileDeleteInFlight проверяет, что после закрытия нет уведомлений и перезагрузок
func TestLedger_CloseWhileDeleteInFlight(t *testing.T) {
	l := newTestLedger(t)
	l.gateway.EXPECT().
		Delete(mock.Anything, "42").
		RunAndReturn(func(ctx context.Context, id string) error {
			l.Close()
			return ctx.Err()
		}).
		Once()
	l.RequestDeletion("42", snapshot)

	l.clock.Advance(GracePeriod)

	assert.Empty(t, l.alerts.alerts)
	assert.Zero(t, l.loader.Count())
}
