package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/leeloo-sync/internal/metrics"
	"github.com/heartmarshall/leeloo-sync/pkg/ctxutil"
)

// Logger writes one "http.request" record per request and feeds the HTTP
// metrics. 5xx responses are logged at ERROR.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			metrics.RecordHTTPRequest(r.Method, routePattern(r), status, elapsed)

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", elapsed),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if fn := FunctionName(r); fn != "" {
				attrs = append(attrs, slog.String("function", fn))
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}
