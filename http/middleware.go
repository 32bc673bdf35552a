package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

type requestIDKey struct{}

// RequestIDFromContext returns the ID RequestLogger assigned to the request,
// or "" if there is none.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestLogger creates middleware that tags each request with a random ID
// and logs it once the response is written. Request headers are logged at
// debug level. Pass nil to log with slog.Default().
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := logger
			if l == nil {
				l = slog.Default()
			}

			start := time.Now()
			id := uuid.NewString()
			l = l.With("request_id", id)

			l.Debug("request received",
				"method", r.Method,
				"url", requestTarget(r),
				"headers", r.Header,
			)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				l.Info("request served",
					"method", r.Method,
					"url", requestTarget(r),
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
				)
			}()

			ctx := context.WithValue(r.Context(), requestIDKey{}, id)
			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}
