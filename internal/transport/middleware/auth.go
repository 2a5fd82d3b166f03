package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/leeloo-sync/internal/auth"
	"github.com/heartmarshall/leeloo-sync/pkg/ctxutil"
)

type tokenValidator interface {
	Validate(token string) (auth.Client, error)
}

// Auth requires a valid web-service token, given either as a Bearer
// Authorization header or as the wstoken parameter. The calling site and
// its granted functions are stored in the request context.
func Auth(validator tokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				WriteException(w, http.StatusUnauthorized, Exception{
					Exception: "moodle_exception",
					ErrorCode: "invalidtoken",
					Message:   "Invalid token - token not found",
				})
				return
			}

			client, err := validator.Validate(token)
			if err != nil {
				logger.WarnContext(r.Context(), "rejected ws token",
					slog.String("error", err.Error()),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				WriteException(w, http.StatusUnauthorized, Exception{
					Exception: "moodle_exception",
					ErrorCode: "invalidtoken",
					Message:   "Invalid token - token not valid",
				})
				return
			}

			ctx := ctxutil.WithClientSite(r.Context(), client.Site)
			ctx = ctxutil.WithGrantedFunctions(ctx, client.Functions)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if t := r.URL.Query().Get("wstoken"); t != "" {
		return t
	}
	if isForm(r) {
		return r.PostFormValue("wstoken")
	}
	return ""
}

func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(ct, "multipart/form-data")
}
