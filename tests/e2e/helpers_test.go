//go:build e2e

package e2e_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/leeloo-sync/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/leeloo-sync/internal/app"
	"github.com/heartmarshall/leeloo-sync/internal/auth"
	"github.com/heartmarshall/leeloo-sync/internal/config"
)

const (
	testSecret = "e2e-secret-0123456789abcdef012345"
	testIssuer = "leeloo-sync-e2e"
)

// testServer is a running gateway backed by the shared test database.
type testServer struct {
	*httptest.Server
	pool  *pgxpool.Pool
	token string
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Server:    config.ServerConfig{MaxBodyBytes: 1 << 20},
		Auth:      config.AuthConfig{TokenSecret: testSecret, TokenIssuer: testIssuer},
		Leeloo:    config.LeelooConfig{InstallURL: "https://lxp.example.com/", CacheTTL: time.Minute},
		RateLimit: config.RateLimitConfig{Enabled: false},
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST", AllowedHeaders: "Authorization,Content-Type"},
	}

	srv := httptest.NewServer(app.NewHandler(cfg, logger, pool))
	t.Cleanup(srv.Close)

	token, err := auth.NewTokenManager(testSecret, testIssuer, 0).Issue("lxp.example.com")
	require.NoError(t, err)

	return &testServer{Server: srv, pool: pool, token: token}
}

// call invokes a web-service function with form parameters and returns the
// HTTP status and the raw body.
func (s *testServer) call(t *testing.T, function string, params map[string]string) (int, []byte) {
	t.Helper()

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	req, err := http.NewRequest(http.MethodPost, s.URL+"/webservice/rest/"+function, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

// result calls function, requires a 200 and decodes the string result.
func (s *testServer) result(t *testing.T, function string, params map[string]string) string {
	t.Helper()

	status, body := s.call(t, function, params)
	require.Equal(t, http.StatusOK, status, "body: %s", body)

	var out string
	require.NoError(t, json.Unmarshal(body, &out), "body: %s", body)
	return out
}

// decode unmarshals a JSON-encoded result string into v.
func decode(t *testing.T, raw string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(raw), v), "result: %s", raw)
}

// jsonParam encodes v as a JSON object parameter.
func jsonParam(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// ids splits a comma separated result of ids.
func ids(raw string) []string { return strings.Split(raw, ",") }
