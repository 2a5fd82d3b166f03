package rest

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

// params holds the flat string parameters of one web-service call.
type params map[string]string

// readParams collects the call parameters from the query string and either
// a form body or a flat JSON object body. Non-string JSON values are kept
// as their raw JSON text.
func readParams(w http.ResponseWriter, r *http.Request, maxBytes int64) (params, error) {
	p := params{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			p[k] = v[0]
		}
	}

	body := http.MaxBytesReader(w, r.Body, maxBytes)
	ct := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(ct, "application/json"):
		raw, err := io.ReadAll(body)
		if err != nil {
			return nil, domain.NewValidationError("body", err.Error())
		}
		if len(strings.TrimSpace(string(raw))) == 0 {
			return p, nil
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, domain.NewValidationError("body", "must be a JSON object")
		}
		for k, v := range obj {
			var s string
			if err := json.Unmarshal(v, &s); err == nil {
				p[k] = s
				continue
			}
			p[k] = string(v)
		}
	default:
		r.Body = body
		if err := r.ParseForm(); err != nil {
			return nil, domain.NewValidationError("body", "malformed form")
		}
		for k, v := range r.PostForm {
			if len(v) > 0 {
				p[k] = v[0]
			}
		}
	}
	return p, nil
}

func (p params) str(name string) string {
	return strings.TrimSpace(p[name])
}

func (p params) required(name string) (string, error) {
	v := p.str(name)
	if v == "" {
		return "", domain.NewValidationError(name, "required")
	}
	return v, nil
}

// id parses a required positive integer parameter.
func (p params) id(name string) (int64, error) {
	v, err := p.required(name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return n, nil
}

// optInt parses an optional non-negative integer parameter.
func (p params) optInt(name string) (int64, error) {
	v := p.str(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}

// object decodes a JSON-encoded parameter into dst.
// A missing optional parameter leaves dst untouched and reports false.
func (p params) object(name string, dst any, required bool) (bool, error) {
	v := p.str(name)
	if v == "" || v == "null" {
		if required {
			return false, domain.NewValidationError(name, "required")
		}
		return false, nil
	}
	if err := json.Unmarshal([]byte(v), dst); err != nil {
		return false, domain.NewValidationError(name, "invalid JSON: "+err.Error())
	}
	return true, nil
}

// ids parses a list of ids given as a JSON array or a comma separated list.
func (p params) ids(name string) ([]int64, error) {
	v, err := p.required(name)
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(v, "[") {
		var out []int64
		if err := json.Unmarshal([]byte(v), &out); err != nil {
			return nil, domain.NewValidationError(name, "must be a list of integers")
		}
		return out, nil
	}

	parts := strings.Split(v, ",")
	out := make([]int64, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, domain.NewValidationError(name, "must be a list of integers")
		}
		out = append(out, n)
	}
	return out, nil
}
