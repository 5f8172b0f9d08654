package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/avc-dev/url-shortener-ui/internal/gateway"
	"github.com/avc-dev/url-shortener-ui/internal/ledger"
	"github.com/avc-dev/url-shortener-ui/internal/model"
	"github.com/avc-dev/url-shortener-ui/internal/notification"
	"github.com/avc-dev/url-shortener-ui/internal/query"
	"github.com/avc-dev/url-shortener-ui/internal/scheduler"
	"github.com/avc-dev/url-shortener-ui/internal/view"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockery --name Gateway

// Gateway определяет операции удалённого API, которые использует сессия
type Gateway interface {
	List(ctx context.Context, page, size int) (model.Page, error)
	Search(ctx context.Context, term string, page, size int) (model.Page, error)
	Create(ctx context.Context, originalURL string) (model.ShortURL, error)
	Delete(ctx context.Context, id string) error
}

var validate = validator.New()

// Session содержит состояние одного пользователя: запрос и страницу, отложенные удаления
// и уведомления. Каждая сессия владеет своими таймерами и закрывает их в Close.
type Session struct {
	id      string
	gateway Gateway
	logger  *zap.Logger

	query  *query.Controller
	ledger *ledger.Ledger
	queue  *notification.Queue
	banner *notification.Banner

	loading atomic.Int32

	ctx    context.Context
	cancel context.CancelFunc
}

// NewSession создает сессию с отдельным контроллером, журналом удалений и уведомлениями
func NewSession(id string, gw Gateway, s scheduler.Scheduler, pageSize int, logger *zap.Logger) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	logger = logger.With(zap.String("session_id", id))

	controller := query.New(gw, s, pageSize, logger.Named("query"))
	queue := notification.NewQueue()
	banner := notification.NewBanner(s, logger.Named("banner"))

	return &Session{
		id:      id,
		gateway: gw,
		logger:  logger,
		query:   controller,
		ledger:  ledger.New(gw, queue, controller, banner, s, logger.Named("ledger")),
		queue:   queue,
		banner:  banner,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *Session) ID() string {
	return s.id
}

// Open выполняет первую загрузку списка
func (s *Session) Open() {
	s.query.Load()
}

// OnCreate сокращает введённую ссылку и перезагружает текущую страницу.
// Пустой ввод и ссылка, уже видимая в списке, отклоняются без запроса к API.
func (s *Session) OnCreate(text string) error {
	trimmed := strings.TrimSpace(text)

	if err := validate.Var(trimmed, "required"); err != nil {
		s.banner.Show(MsgEmptyURL, model.SeverityWarning)
		return ErrEmptyURL
	}

	for _, item := range s.visible() {
		if item.OriginalURL == trimmed {
			s.logger.Debug("URL already exists", zap.String("original_url", trimmed))
			s.banner.Show(MsgURLExists, model.SeverityWarning)
			return ErrDuplicateURL
		}
	}

	s.loading.Add(1)
	defer s.loading.Add(-1)

	created, err := s.gateway.Create(s.ctx, trimmed)
	if err != nil {
		s.logger.Error("failed to create short URL",
			zap.String("original_url", trimmed),
			zap.Error(err),
		)
		s.banner.Show(errorMessage(err), model.SeverityError)
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	s.logger.Info("short URL created",
		zap.String("original_url", created.OriginalURL),
		zap.String("short_url", created.ShortURL),
	)

	if created.ShortURL != "" && created.OriginalURL != "" {
		s.query.Load()
	}
	return nil
}

// OnDelete скрывает запись текущей страницы и запускает окно отмены удаления
func (s *Session) OnDelete(id string) error {
	for _, item := range s.query.Page().Items {
		if item.ID == id {
			s.ledger.RequestDeletion(id, item)
			return nil
		}
	}
	return ErrNotOnPage
}

func (s *Session) OnUndo(id string) {
	s.ledger.Undo(id)
}

func (s *Session) OnSearchChange(term string) {
	s.query.SetSearchTerm(term)
}

func (s *Session) OnSearchClear() {
	s.query.SetSearchTerm("")
}

func (s *Session) OnPageChange(n int) error {
	return s.query.SetPage(n)
}

// OnDismissNotification закрывает уведомление. Отложенное удаление при этом продолжается
func (s *Session) OnDismissNotification(id string) {
	s.queue.Dismiss(id)
}

func (s *Session) OnDismissBanner() {
	s.banner.Hide()
}

// View возвращает снимок состояния для отображения
func (s *Session) View() model.View {
	q, page := s.query.State()
	pending := s.ledger.PendingIDs()

	v := model.View{
		Query:         q,
		Page:          page,
		Visible:       view.Visible(page.Items, pending),
		Loading:       s.loading.Load() > 0,
		Notifications: s.queue.List(),
		PendingCount:  len(pending),
	}
	if banner, ok := s.banner.Current(); ok {
		v.Banner = &banner
	}
	return v
}

// Close отменяет все таймеры сессии: удаления, поиск и скрытие уведомления
func (s *Session) Close() {
	s.ledger.Close()
	s.query.Close()
	s.banner.Close()
	s.cancel()
	s.logger.Debug("session closed")
}

func (s *Session) visible() []model.ShortURL {
	return view.Visible(s.query.Page().Items, s.ledger.PendingIDs())
}

// errorMessage возвращает сообщение сервера, если оно есть, иначе общий текст
func errorMessage(err error) string {
	var transportErr *gateway.TransportError
	if errors.As(err, &transportErr) && transportErr.Message != "" {
		return transportErr.Message
	}
	return MsgErrorOccurred
}
