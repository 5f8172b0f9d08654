package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var gzipWriters = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

// gzipBody распаковывает тело запроса и закрывает исходный поток
type gzipBody struct {
	src io.ReadCloser
	*gzip.Reader
}

func newGzipBody(src io.ReadCloser) (*gzipBody, error) {
	zr, err := gzip.NewReader(src)
	if err != nil {
		return nil, err
	}
	return &gzipBody{src: src, Reader: zr}, nil
}

func (b *gzipBody) Close() error {
	if err := b.Reader.Close(); err != nil {
		return err
	}
	return b.src.Close()
}

// isCompressible сжимаются только JSON-ответы API
func isCompressible(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return ct == "application/json"
}

// gzipResponseWriter включает сжатие в момент записи заголовков, если ответ успешный JSON
type gzipResponseWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode < http.StatusMultipleChoices && statusCode != http.StatusNoContent &&
		isCompressible(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.zw = gzipWriters.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.zw != nil {
		return w.zw.Write(data)
	}
	return w.ResponseWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	if w.zw == nil {
		return nil
	}
	err := w.zw.Close()
	gzipWriters.Put(w.zw)
	w.zw = nil
	return err
}

// Gzip распаковывает входящие тела с Content-Encoding: gzip и сжимает JSON-ответы
// для клиентов, передавших Accept-Encoding: gzip
func Gzip(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				body, err := newGzipBody(r.Body)
				if err != nil {
					logger.Error("Failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("method", r.Method),
					)
					http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := body.Close(); err != nil {
						logger.Warn("Failed to close request body", zap.Error(err))
					}
				}()
				r.Body = body
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Accept-Encoding")
			gw := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gw.Close(); err != nil {
					logger.Error("Failed to close gzip writer",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}
