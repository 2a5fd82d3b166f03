package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/leeloo-sync/pkg/ctxutil"
)

// Recovery turns a handler panic into a 500 internalerror exception.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("function", FunctionName(r)),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)
				WriteException(w, http.StatusInternalServerError, Exception{
					Exception: "moodle_exception",
					ErrorCode: "internalerror",
					Message:   "Internal error",
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
