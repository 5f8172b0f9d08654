package query

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc-dev/url-shortener-ui/internal/metrics"
	"github.com/avc-dev/url-shortener-ui/internal/model"
	"github.com/avc-dev/url-shortener-ui/internal/scheduler"
	"go.uber.org/zap"
)

// DebounceDelay пауза после последнего изменения строки поиска перед загрузкой
const DebounceDelay = 300 * time.Millisecond

// ErrInvalidPage возвращается при номере страницы меньше единицы
var ErrInvalidPage = errors.New("page must be a positive integer")

// Gateway определяет операции чтения удалённого API
type Gateway interface {
	List(ctx context.Context, page, size int) (model.Page, error)
	Search(ctx context.Context, term string, page, size int) (model.Page, error)
}

// Controller хранит строку поиска, номер страницы и последнюю загруженную страницу.
// Все изменения состояния сериализуются мьютексом, запросы к API выполняются без блокировки.
type Controller struct {
	mu        sync.Mutex
	gateway   Gateway
	scheduler scheduler.Scheduler
	logger    *zap.Logger

	query model.Query
	page  model.Page

	debounce    scheduler.Task
	debounceGen uint64
	// issued номер последней запущенной загрузки; ответы с другим номером отбрасываются
	issued uint64

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// New создает контроллер на первой странице с пустым поиском
func New(gateway Gateway, s scheduler.Scheduler, pageSize int, logger *zap.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())

	return &Controller{
		gateway:   gateway,
		scheduler: s,
		logger:    logger,
		query:     model.Query{Page: 1, PageSize: pageSize},
		page:      model.EmptyPage(1, pageSize),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// SetSearchTerm сохраняет строку поиска и перезапускает таймер отложенной загрузки.
// Загрузка выполняется только после паузы DebounceDelay с первой страницы.
func (c *Controller) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.query.SearchTerm = term
	if c.debounce != nil {
		c.debounce.Cancel()
	}
	c.debounceGen++
	gen := c.debounceGen
	c.debounce = c.scheduler.AfterFunc(DebounceDelay, func() { c.fireDebounce(gen) })
}

// SetPage переходит на страницу n и сразу загружает её.
// Верхняя граница не проверяется: для несуществующей страницы API вернёт пустой список.
func (c *Controller) SetPage(n int) error {
	if n < 1 {
		return ErrInvalidPage
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.query.Page = n
	c.mu.Unlock()

	c.Load()
	return nil
}

// Load загружает текущую страницу текущего запроса.
// Ошибка загрузки не возвращается: вместо страницы выставляется пустая.
func (c *Controller) Load() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.issued++
	seq := c.issued
	q := c.query
	c.mu.Unlock()

	page, err := c.fetch(q)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if seq != c.issued {
		metrics.StaleLoads.Inc()
		c.logger.Debug("discarding stale page response",
			zap.Uint64("seq", seq),
			zap.Uint64("latest", c.issued),
		)
		return
	}

	if err != nil {
		c.logger.Warn("failed to load page",
			zap.String("search_term", q.SearchTerm),
			zap.Int("page", q.Page),
			zap.Error(err),
		)
		c.page = model.EmptyPage(q.Page, q.PageSize)
		return
	}

	c.page = page
}

// Query возвращает текущий запрос
func (c *Controller) Query() model.Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Page возвращает последнюю загруженную страницу
func (c *Controller) Page() model.Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// State возвращает согласованную пару запроса и страницы
func (c *Controller) State() (model.Query, model.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query, c.page
}

// Close отменяет отложенную загрузку и запросы в полёте
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	if c.debounce != nil {
		c.debounce.Cancel()
		c.debounce = nil
	}
	c.cancel()
}

func (c *Controller) fireDebounce(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.debounceGen {
		c.mu.Unlock()
		return
	}
	c.debounce = nil
	c.query.Page = 1
	c.mu.Unlock()

	c.Load()
}

func (c *Controller) fetch(q model.Query) (model.Page, error) {
	if q.IsSearch() {
		return c.gateway.Search(c.ctx, q.SearchTerm, q.Page-1, q.PageSize)
	}
	return c.gateway.List(c.ctx, q.Page-1, q.PageSize)
}
