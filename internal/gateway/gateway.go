package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avc-dev/url-shortener-ui/internal/metrics"
	"github.com/avc-dev/url-shortener-ui/internal/model"
	"go.uber.org/zap"
)

const (
	opList   = "list"
	opSearch = "search"
	opCreate = "create"
	opDelete = "delete"
)

// urlItem запись в ответе API со списком ссылок
type urlItem struct {
	ID        string `json:"id"`
	LongURL   string `json:"longUrl"`
	ShortCode string `json:"shortCode"`
}

type pageResponse struct {
	Content       []urlItem `json:"content"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	TotalElements int       `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	First         bool      `json:"first"`
	Last          bool      `json:"last"`
}

type createRequest struct {
	LongURL string `json:"longUrl"`
}

type createResponse struct {
	ShortURL string `json:"shortUrl"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// HTTPGateway обращается к REST API сокращателя ссылок
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// New создает шлюз с HTTP клиентом и заданным таймаутом запроса
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPGateway {
	return NewWithClient(baseURL, &http.Client{Timeout: timeout}, logger)
}

// NewWithClient создает шлюз с переданным HTTP клиентом
func NewWithClient(baseURL string, client *http.Client, logger *zap.Logger) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		logger:  logger,
	}
}

// List возвращает страницу ссылок. page считается с нуля
func (g *HTTPGateway) List(ctx context.Context, page, size int) (model.Page, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	return g.fetchPage(ctx, opList, "/api/url?"+query.Encode())
}

// Search возвращает страницу ссылок, найденных по строке. Пустая строка равносильна List
func (g *HTTPGateway) Search(ctx context.Context, term string, page, size int) (model.Page, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return g.List(ctx, page, size)
	}

	query := url.Values{}
	query.Set("q", term)
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	return g.fetchPage(ctx, opSearch, "/api/url/search?"+query.Encode())
}

// Create сокращает ссылку. Идентификатором записи служит код короткой ссылки
func (g *HTTPGateway) Create(ctx context.Context, originalURL string) (model.ShortURL, error) {
	originalURL = strings.TrimSpace(originalURL)

	body, err := json.Marshal(createRequest{LongURL: originalURL})
	if err != nil {
		return model.ShortURL{}, fmt.Errorf("failed to encode create request: %w", err)
	}

	var response createResponse
	if err := g.do(ctx, opCreate, http.MethodPost, "/api/url", bytes.NewReader(body), &response); err != nil {
		return model.ShortURL{}, err
	}

	created := model.ShortURL{
		OriginalURL: originalURL,
		ShortURL:    response.ShortURL,
	}
	created.ShortCode = created.Code()
	created.ID = created.ShortCode

	return created, nil
}

// Delete удаляет ссылку по идентификатору
func (g *HTTPGateway) Delete(ctx context.Context, id string) error {
	return g.do(ctx, opDelete, http.MethodDelete, "/api/url/"+url.PathEscape(id), nil, nil)
}

func (g *HTTPGateway) fetchPage(ctx context.Context, op, path string) (model.Page, error) {
	var response pageResponse
	if err := g.do(ctx, op, http.MethodGet, path, nil, &response); err != nil {
		return model.Page{}, err
	}

	items := make([]model.ShortURL, 0, len(response.Content))
	for _, item := range response.Content {
		items = append(items, g.toShortURL(item))
	}

	return model.Page{
		Items:      items,
		Number:     response.Page + 1,
		Size:       response.Size,
		TotalItems: response.TotalElements,
		TotalPages: response.TotalPages,
	}, nil
}

// toShortURL строит абсолютную короткую ссылку из кода записи
func (g *HTTPGateway) toShortURL(item urlItem) model.ShortURL {
	shortURL := ""
	if item.ShortCode != "" {
		shortURL = g.baseURL + "/" + item.ShortCode
	}

	return model.ShortURL{
		ID:          item.ID,
		OriginalURL: item.LongURL,
		ShortURL:    shortURL,
		ShortCode:   item.ShortCode,
	}
}

func (g *HTTPGateway) do(ctx context.Context, op, method, path string, body io.Reader, out any) (err error) {
	start := time.Now()
	defer func() {
		outcome := metrics.OutcomeSuccess
		if err != nil {
			outcome = metrics.OutcomeError
		}
		metrics.GatewayRequests.WithLabelValues(op, outcome).Inc()
		metrics.GatewayDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("gateway request failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.Error(err),
		)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		transportErr := &TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
			Err:        errors.New(resp.Status),
		}
		g.logger.Warn("gateway returned error status",
			zap.String("op", op),
			zap.String("method", method),
			zap.Int("status", resp.StatusCode),
			zap.String("message", transportErr.Message),
		)
		return transportErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}

// readErrorMessage достаёт поле message из тела ответа с ошибкой, если оно есть
func readErrorMessage(body io.Reader) string {
	var response errorResponse
	if err := json.NewDecoder(io.LimitReader(body, 64<<10)).Decode(&response); err != nil {
		return ""
	}
	return response.Message
}
