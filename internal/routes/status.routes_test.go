package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"watchpost/internal/config"
	"watchpost/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noToolsRunner struct{}

func (noToolsRunner) Output(context.Context, string, ...string) (string, error) {
	return "", errors.New("command not found")
}

func newTestRouter(t *testing.T, token string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// Closed server: the public IP probe degrades to its sentinel.
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	collector := services.NewCollector(config.Probes{
		IPEchoURL:           url,
		CommandTimeoutSec:   1,
		SpeedtestTimeoutSec: 1,
		HTTPTimeoutSec:      1,
	}, noToolsRunner{})

	r := gin.New()
	RegisterStatusRoutes(r, token, collector)
	return r
}

func TestStatusMissingToken(t *testing.T) {
	r := newTestRouter(t, "s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", w.Body.String())
}

func TestStatusWrongToken(t *testing.T) {
	r := newTestRouter(t, "s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized", w.Body.String())
}

func TestStatusMalformedHeader(t *testing.T) {
	r := newTestRouter(t, "s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("Authorization", "s3cret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStatusAuthorized(t *testing.T) {
	r := newTestRouter(t, "s3cret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{"server_status", "server_uptime", "server_data", "data", "network"} {
		assert.Contains(t, body, key)
	}

	var status string
	require.NoError(t, json.Unmarshal(body["server_status"], &status))
	assert.Equal(t, "online", status)
}
