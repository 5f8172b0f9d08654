package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/url-shortener-ui/internal/middleware"
	"github.com/avc-dev/url-shortener-ui/internal/mocks"
	"github.com/avc-dev/url-shortener-ui/internal/model"
	"github.com/avc-dev/url-shortener-ui/internal/query"
	"github.com/avc-dev/url-shortener-ui/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSessionID = "session-1"

func newTestHandler(t *testing.T) (*Handler, *mocks.MockURLSession) {
	t.Helper()
	s := mocks.NewMockURLSession(t)
	provider := SessionProviderFunc(func(id string) (URLSession, error) {
		require.Equal(t, testSessionID, id)
		return s, nil
	})
	return New(provider, zap.NewNop()), s
}

// newRequest создает запрос с идентификатором сессии и параметрами маршрута
func newRequest(method, target, body string, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = middleware.WithSessionID(ctx, testSessionID)

	return req.WithContext(ctx)
}

func sampleView() model.View {
	item := model.ShortURL{ID: "abc123", OriginalURL: "https://example.com", ShortURL: "http://short/abc123", ShortCode: "abc123"}
	return model.View{
		Query:   model.Query{Page: 0, PageSize: 5},
		Page:    model.Page{Items: []model.ShortURL{item}, Number: 1, Size: 5, TotalItems: 1, TotalPages: 1},
		Visible: []model.ShortURL{item},
	}
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) model.View {
	t.Helper()
	var v model.View
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

func TestPing(t *testing.T) {
	h := New(nil, zap.NewNop())
	w := httptest.NewRecorder()

	h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestView_Success проверяет выдачу состояния сессии
func TestView_Success(t *testing.T) {
	// Arrange
	h, s := newTestHandler(t)
	s.EXPECT().View().Return(sampleView()).Once()
	w := httptest.NewRecorder()

	// Act
	h.View(w, newRequest(http.MethodGet, "/api/view", "", nil))

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	v := decodeView(t, w)
	require.Len(t, v.Visible, 1)
	assert.Equal(t, "abc123", v.Visible[0].ID)
}

func TestView_WithoutSession(t *testing.T) {
	h, _ := newTestHandler(t)
	w := httptest.NewRecorder()

	h.View(w, httptest.NewRequest(http.MethodGet, "/api/view", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestView_SessionUnavailable(t *testing.T) {
	h := New(SessionProviderFunc(func(string) (URLSession, error) {
		return nil, errors.New("registry closed")
	}), zap.NewNop())
	w := httptest.NewRecorder()

	h.View(w, newRequest(http.MethodGet, "/api/view", "", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// TestCreateURL проверяет сокращение ссылки и перевод ошибок в статусы
func TestCreateURL(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantCreate bool
		wantStatus int
	}{
		{name: "created", body: `{"url":"https://example.com"}`, wantCreate: true, wantStatus: http.StatusCreated},
		{name: "empty URL", body: `{"url":"   "}`, createErr: usecase.ErrEmptyURL, wantCreate: true, wantStatus: http.StatusBadRequest},
		{name: "duplicate", body: `{"url":"https://example.com"}`, createErr: usecase.ErrDuplicateURL, wantCreate: true, wantStatus: http.StatusConflict},
		{
			name:       "remote failure",
			body:       `{"url":"https://example.com"}`,
			createErr:  fmt.Errorf("%w: %w", usecase.ErrServiceUnavailable, errors.New("connection refused")),
			wantCreate: true,
			wantStatus: http.StatusBadGateway,
		},
		{name: "invalid JSON", body: `{"url":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			h, s := newTestHandler(t)
			if tt.wantCreate {
				var request CreateURLRequest
				require.NoError(t, json.Unmarshal([]byte(tt.body), &request))
				s.EXPECT().OnCreate(request.URL).Return(tt.createErr).Once()
				s.EXPECT().View().Return(sampleView()).Once()
			}
			w := httptest.NewRecorder()

			// Act
			h.CreateURL(w, newRequest(http.MethodPost, "/api/urls", tt.body, nil))

			// Assert
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.createErr != nil {
				var resp errorResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.createErr.Error(), resp.Error)
				assert.NotNil(t, resp.View)
			}
		})
	}
}

func TestDeleteURL(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		// Arrange
		h, s := newTestHandler(t)
		view := sampleView()
		view.Visible = []model.ShortURL{}
		view.PendingCount = 1
		s.EXPECT().OnDelete("abc123").Return(nil).Once()
		s.EXPECT().View().Return(view).Once()
		w := httptest.NewRecorder()

		// Act
		h.DeleteURL(w, newRequest(http.MethodDelete, "/api/urls/abc123", "", map[string]string{"id": "abc123"}))

		// Assert
		assert.Equal(t, http.StatusAccepted, w.Code)
		v := decodeView(t, w)
		assert.Empty(t, v.Visible)
		assert.Equal(t, 1, v.PendingCount)
	})

	t.Run("not on page", func(t *testing.T) {
		h, s := newTestHandler(t)
		s.EXPECT().OnDelete("missing").Return(usecase.ErrNotOnPage).Once()
		s.EXPECT().View().Return(sampleView()).Once()
		w := httptest.NewRecorder()

		h.DeleteURL(w, newRequest(http.MethodDelete, "/api/urls/missing", "", map[string]string{"id": "missing"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUndoDelete(t *testing.T) {
	h, s := newTestHandler(t)
	s.EXPECT().OnUndo("abc123").Return().Once()
	s.EXPECT().View().Return(sampleView()).Once()
	w := httptest.NewRecorder()

	h.UndoDelete(w, newRequest(http.MethodPost, "/api/urls/abc123/undo", "", map[string]string{"id": "abc123"}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearch(t *testing.T) {
	t.Run("term", func(t *testing.T) {
		h, s := newTestHandler(t)
		s.EXPECT().OnSearchChange("exam").Return().Once()
		s.EXPECT().View().Return(sampleView()).Once()
		w := httptest.NewRecorder()

		h.Search(w, newRequest(http.MethodPut, "/api/search", `{"term":"exam"}`, nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		h, _ := newTestHandler(t)
		w := httptest.NewRecorder()

		h.Search(w, newRequest(http.MethodPut, "/api/search", `term`, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("clear", func(t *testing.T) {
		h, s := newTestHandler(t)
		s.EXPECT().OnSearchClear().Return().Once()
		s.EXPECT().View().Return(sampleView()).Once()
		w := httptest.NewRecorder()

		h.ClearSearch(w, newRequest(http.MethodDelete, "/api/search", "", nil))

		assert.Equal(t, http.StatusAccepted, w.Code)
	})
}

func TestChangePage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		err        error
		wantStatus int
	}{
		{name: "valid page", page: 2, wantStatus: http.StatusOK},
		{name: "invalid page", page: 0, err: query.ErrInvalidPage, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := newTestHandler(t)
			s.EXPECT().OnPageChange(tt.page).Return(tt.err).Once()
			s.EXPECT().View().Return(sampleView()).Once()
			w := httptest.NewRecorder()

			h.ChangePage(w, newRequest(http.MethodPut, "/api/page", fmt.Sprintf(`{"page":%d}`, tt.page), nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestDismissNotification(t *testing.T) {
	h, s := newTestHandler(t)
	id := model.DeleteNotificationID("abc123")
	s.EXPECT().OnDismissNotification(id).Return().Once()
	s.EXPECT().View().Return(sampleView()).Once()
	w := httptest.NewRecorder()

	h.DismissNotification(w, newRequest(http.MethodDelete, "/api/notifications/"+id, "", map[string]string{"id": id}))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDismissBanner(t *testing.T) {
	h, s := newTestHandler(t)
	s.EXPECT().OnDismissBanner().Return().Once()
	s.EXPECT().View().Return(sampleView()).Once()
	w := httptest.NewRecorder()

	h.DismissBanner(w, newRequest(http.MethodDelete, "/api/banner", "", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleError_Unexpected(t *testing.T) {
	h, s := newTestHandler(t)
	s.EXPECT().View().Return(sampleView()).Once()
	w := httptest.NewRecorder()

	h.handleError(w, s, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
