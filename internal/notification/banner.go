package notification

import (
	"sync"
	"time"

	"github.com/avc-dev/url-shortener-ui/internal/model"
	"github.com/avc-dev/url-shortener-ui/internal/scheduler"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// HideAfter время показа обычного глобального уведомления
	HideAfter = 3000 * time.Millisecond
	// UndoHideAfter время показа глобального уведомления с действием отмены
	UndoHideAfter = 5000 * time.Millisecond
)

// Banner хранит единственное глобальное уведомление.
// Новое уведомление целиком заменяет текущее и перезапускает таймер скрытия.
type Banner struct {
	mu        sync.Mutex
	scheduler scheduler.Scheduler
	logger    *zap.Logger
	current   *model.Notification
	hideTask  scheduler.Task
	closed    bool
}

// NewBanner создает глобальное уведомление без активного сообщения
func NewBanner(s scheduler.Scheduler, logger *zap.Logger) *Banner {
	return &Banner{
		scheduler: s,
		logger:    logger,
	}
}

// Show показывает сообщение без действия отмены
func (b *Banner) Show(message string, severity model.Severity) {
	b.show(model.Notification{Message: message, Severity: severity})
}

// ShowWithUndo показывает сообщение с действием отмены и увеличенным временем показа
func (b *Banner) ShowWithUndo(message string, severity model.Severity, undo func()) {
	b.show(model.Notification{Message: message, Severity: severity, Undo: undo})
}

func (b *Banner) show(n model.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	n.ID = uuid.NewString()
	b.stopTimer()
	b.current = &n

	hideAfter := HideAfter
	if n.Undoable() {
		hideAfter = UndoHideAfter
	}
	id := n.ID
	b.hideTask = b.scheduler.AfterFunc(hideAfter, func() { b.expire(id) })

	b.logger.Debug("banner shown",
		zap.String("severity", string(n.Severity)),
		zap.String("message", n.Message),
		zap.Duration("hide_after", hideAfter),
	)
}

// Hide скрывает текущее уведомление досрочно
func (b *Banner) Hide() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopTimer()
	b.current = nil
}

// Current возвращает текущее уведомление, если оно показано
func (b *Banner) Current() (model.Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return model.Notification{}, false
	}
	return *b.current, true
}

// Close отменяет таймер скрытия. После закрытия новые уведомления не показываются
func (b *Banner) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.stopTimer()
	b.current = nil
}

func (b *Banner) expire(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// таймер мог сработать одновременно с заменой уведомления
	if b.current == nil || b.current.ID != id {
		return
	}
	b.current = nil
	b.hideTask = nil
}

func (b *Banner) stopTimer() {
	if b.hideTask != nil {
		b.hideTask.Cancel()
		b.hideTask = nil
	}
}
