package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Logger returns a middleware that logs HTTP requests using zap logger.
// Requests passing the session middleware are tagged with their session id.
func Logger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			// сессия появляется в контексте только ниже по цепочке, поэтому читаем её из ответа
			var sessionID string
			next.ServeHTTP(ww, r.WithContext(withSessionSink(r.Context(), &sessionID)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("uri", r.RequestURI),
				zap.Int("status", status),
				zap.Duration("duration", time.Since(start)),
				zap.Int("size", ww.BytesWritten()),
				zap.String("remote_addr", r.RemoteAddr),
			}
			if sessionID != "" {
				fields = append(fields, zap.String("session_id", sessionID))
			}

			logger.Info("HTTP request", fields...)
		})
	}
}
