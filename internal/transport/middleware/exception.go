package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// Exception is the Moodle-style error body returned by the web-service.
type Exception struct {
	Exception string `json:"exception"`
	ErrorCode string `json:"errorcode"`
	Message   string `json:"message"`
	DebugInfo string `json:"debuginfo,omitempty"`
}

// WriteException writes e as a JSON body with the given status.
func WriteException(w http.ResponseWriter, status int, e Exception) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(e) //nolint:errcheck
}

// FunctionName returns the web-service function addressed by r: the
// {function} route parameter, or the wsfunction query value of server.php.
func FunctionName(r *http.Request) string {
	if fn := chi.URLParam(r, "function"); fn != "" && fn != "server.php" {
		return fn
	}
	return r.URL.Query().Get("wsfunction")
}
