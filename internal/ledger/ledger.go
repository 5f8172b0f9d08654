package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/url-shortener-ui/internal/metrics"
	"github.com/avc-dev/url-shortener-ui/internal/model"
	"github.com/avc-dev/url-shortener-ui/internal/scheduler"
	"go.uber.org/zap"
)

// GracePeriod окно, в течение которого удаление можно отменить
const GracePeriod = 5000 * time.Millisecond

// MsgDeleteFailed текст глобального уведомления при ошибке удаления на сервере
const MsgDeleteFailed = "An error occurred while deleting the URL"

// Gateway удаляет запись на сервере
type Gateway interface {
	Delete(ctx context.Context, id string) error
}

// Notifier управляет списком уведомлений об удалении
type Notifier interface {
	Push(n model.Notification)
	Dismiss(id string) bool
}

// Loader перезагружает текущую страницу текущего запроса
type Loader interface {
	Load()
}

// Alerter показывает глобальное уведомление
type Alerter interface {
	Show(message string, severity model.Severity)
}

// PendingDeletion запись, скрытая из списка, но ещё не удалённая на сервере
type PendingDeletion struct {
	EntityID    string
	Snapshot    model.ShortURL
	ScheduledAt time.Time
	Grace       time.Duration
}

type entry struct {
	PendingDeletion
	task scheduler.Task
	// inFlight выставляется при срабатывании таймера; такую запись уже нельзя отменить
	inFlight bool
}

// Ledger хранит отложенные удаления, не более одного на запись
type Ledger struct {
	mu      sync.Mutex
	entries map[string]*entry

	gateway   Gateway
	notifier  Notifier
	loader    Loader
	alerter   Alerter
	scheduler scheduler.Scheduler
	logger    *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// New создает пустой журнал отложенных удалений
func New(gateway Gateway, notifier Notifier, loader Loader, alerter Alerter, s scheduler.Scheduler, logger *zap.Logger) *Ledger {
	ctx, cancel := context.WithCancel(context.Background())

	return &Ledger{
		entries:   make(map[string]*entry),
		gateway:   gateway,
		notifier:  notifier,
		loader:    loader,
		alerter:   alerter,
		scheduler: s,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// RequestDeletion скрывает запись и планирует её удаление через GracePeriod.
// Предыдущее отложенное удаление той же записи отменяется и заменяется новым.
func (l *Ledger) RequestDeletion(id string, snapshot model.ShortURL) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	if old, ok := l.entries[id]; ok {
		old.task.Cancel()
		l.removeLocked(id)
		l.logger.Debug("replacing pending deletion", zap.String("id", id))
	}

	e := &entry{
		PendingDeletion: PendingDeletion{
			EntityID:    id,
			Snapshot:    snapshot,
			ScheduledAt: l.scheduler.Now(),
			Grace:       GracePeriod,
		},
	}
	e.task = l.scheduler.AfterFunc(GracePeriod, func() { l.fire(e) })
	l.entries[id] = e
	metrics.PendingDeletions.Inc()

	l.notifier.Push(model.Notification{
		ID:       model.DeleteNotificationID(id),
		Message:  fmt.Sprintf("URL deleted: %s", snapshot.Code()),
		Severity: model.SeveritySuccess,
		Undo:     func() { l.Undo(id) },
	})

	l.logger.Info("deletion scheduled",
		zap.String("id", id),
		zap.Duration("grace", GracePeriod),
	)
}

// Undo отменяет отложенное удаление и перезагружает страницу.
// Если удаления нет или запрос к серверу уже отправлен, ничего не делает.
func (l *Ledger) Undo(id string) {
	l.mu.Lock()
	e, ok := l.entries[id]
	if l.closed || !ok || e.inFlight {
		l.mu.Unlock()
		l.logger.Debug("nothing to undo", zap.String("id", id))
		return
	}
	e.task.Cancel()
	l.removeLocked(id)
	l.mu.Unlock()

	l.logger.Info("deletion undone", zap.String("id", id))
	l.loader.Load()
}

// IsPending сообщает, скрыта ли запись отложенным удалением
func (l *Ledger) IsPending(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.entries[id]
	return ok
}

// PendingIDs возвращает множество идентификаторов с отложенным удалением
func (l *Ledger) PendingIDs() map[string]struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := make(map[string]struct{}, len(l.entries))
	for id := range l.entries {
		ids[id] = struct{}{}
	}
	return ids
}

// Pending возвращает копию записи об отложенном удалении
func (l *Ledger) Pending(id string) (PendingDeletion, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[id]
	if !ok {
		return PendingDeletion{}, false
	}
	return e.PendingDeletion, true
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Close отменяет все таймеры и запросы в полёте. После закрытия журнал ничего не удаляет
func (l *Ledger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.closed = true
	for id, e := range l.entries {
		e.task.Cancel()
		delete(l.entries, id)
		metrics.PendingDeletions.Dec()
	}
	l.cancel()
}

func (l *Ledger) fire(e *entry) {
	id := e.EntityID

	l.mu.Lock()
	// запись могла быть отменена или заменена, пока таймер ждал блокировку
	if l.closed || l.entries[id] != e || e.inFlight {
		l.mu.Unlock()
		return
	}
	e.inFlight = true
	l.mu.Unlock()

	err := l.gateway.Delete(l.ctx, id)

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if l.entries[id] == e {
		l.removeLocked(id)
	}
	l.mu.Unlock()

	if err != nil {
		l.logger.Error("failed to delete URL",
			zap.String("id", id),
			zap.Error(err),
		)
		l.alerter.Show(MsgDeleteFailed, model.SeverityError)
	} else {
		l.logger.Info("URL deleted", zap.String("id", id))
	}

	// перезагрузка согласует список с сервером и в случае ошибки вернёт запись на место
	l.loader.Load()
}

func (l *Ledger) removeLocked(id string) {
	delete(l.entries, id)
	metrics.PendingDeletions.Dec()
	l.notifier.Dismiss(model.DeleteNotificationID(id))
}
