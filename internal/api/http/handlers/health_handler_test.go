package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func readyResponse(t *testing.T, deps map[string]Pinger) (int, map[string]any) {
	t.Helper()
	app := fiber.New()
	h := NewHealthHandler("vet-clinic-service", "test", deps)
	app.Get("/health/ready", h.Ready)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHealth_Ready(t *testing.T) {
	status, body := readyResponse(t, map[string]Pinger{"postgres": stubPinger{}, "redis": stubPinger{}})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])
	assert.Equal(t, map[string]any{"postgres": "ok", "redis": "ok"}, body["dependencies"])
}

func TestHealth_NotReady(t *testing.T) {
	status, body := readyResponse(t, map[string]Pinger{
		"postgres": stubPinger{},
		"redis":    stubPinger{err: errors.New("dial tcp: connection refused")},
	})
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "DEPENDENCY_UNAVAILABLE", body["code"])
	assert.Equal(t, map[string]any{"postgres": "ok", "redis": "dial tcp: connection refused"}, body["dependencies"])
}

func TestHealth_Live(t *testing.T) {
	app := fiber.New()
	app.Get("/health/live", NewHealthHandler("svc", "1.2.3", nil).Live)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, map[string]string{"status": "alive", "service": "svc", "version": "1.2.3"}, body)
}
