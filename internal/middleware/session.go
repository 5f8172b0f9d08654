package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type (
	sessionIDKey   struct{}
	sessionSinkKey struct{}
)

// SessionIssuer выдает идентификатор сессии по куке запроса
type SessionIssuer interface {
	GetOrCreateSession(r *http.Request, w http.ResponseWriter) (string, error)
}

// Session определяет сессию браузера и добавляет её идентификатор в контекст запроса
func Session(issuer SessionIssuer, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, err := issuer.GetOrCreateSession(r, w)
			if err != nil {
				logger.Error("failed to resolve session", zap.Error(err))
				http.Error(w, "Session initialization failed", http.StatusInternalServerError)
				return
			}

			if sink, ok := r.Context().Value(sessionSinkKey{}).(*string); ok {
				*sink = sessionID
			}

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
		})
	}
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// SessionIDFromContext извлекает идентификатор сессии из контекста запроса
func SessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey{}).(string)
	return sessionID, ok && sessionID != ""
}

// withSessionSink позволяет внешнему middleware узнать сессию, определённую ниже по цепочке
func withSessionSink(ctx context.Context, sink *string) context.Context {
	return context.WithValue(ctx, sessionSinkKey{}, sink)
}
