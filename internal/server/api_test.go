package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpbranski/clickfluencer/internal/config"
	"github.com/jpbranski/clickfluencer/internal/game"
	"github.com/jpbranski/clickfluencer/internal/telemetry"
)

type noDropRNG struct{}

func (noDropRNG) Float64() float64 { return 0.99 }

func newTestHandler(t *testing.T) (http.Handler, *game.Engine) {
	t.Helper()
	engine := game.New(game.Options{Balance: config.Default(), RNG: noDropRNG{}})
	handler := NewHandler(&App{
		Engine:    engine,
		Telemetry: telemetry.NewMemoryRepository(),
		BootNow:   time.Now(),
	})
	return handler, engine
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string, out any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec
}

func TestStateEndpoint(t *testing.T) {
	handler, _ := newTestHandler(t)

	var got map[string]any
	rec := doJSON(t, handler, "GET", "/api/state", "", &got)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.0", got["version"])
}

func TestClickEndpointGrantsCreds(t *testing.T) {
	handler, engine := newTestHandler(t)

	var res struct {
		Gained float64 `json:"gained"`
	}
	rec := doJSON(t, handler, "POST", "/api/click", "", &res)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 1.0, res.Gained, 0.0001)
	assert.InDelta(t, 1.0, engine.Snapshot().Creds, 0.0001)
}

func TestBuyGeneratorRejectionIsNotAnError(t *testing.T) {
	handler, _ := newTestHandler(t)

	var res struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	rec := doJSON(t, handler, "POST", "/api/generators/selfie_cam/buy", "", &res)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
}

func TestBuyGeneratorUnknownIDIs404(t *testing.T) {
	handler, _ := newTestHandler(t)
	rec := doJSON(t, handler, "POST", "/api/generators/nope/buy", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuyGeneratorBulkQuery(t *testing.T) {
	handler, engine := newTestHandler(t)
	for i := 0; i < 40; i++ {
		engine.Click()
	}

	var res struct {
		Success bool    `json:"success"`
		Bought  int     `json:"bought"`
		Spent   float64 `json:"spent"`
	}
	rec := doJSON(t, handler, "POST", "/api/generators/selfie_cam/buy?qty=3", "", &res)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, res.Success)
	// 10 + 11 + 13 at the 1.15 curve.
	assert.Equal(t, 3, res.Bought)
	assert.InDelta(t, 34.0, res.Spent, 0.0001)
}

func TestBuyGeneratorBadQty(t *testing.T) {
	handler, _ := newTestHandler(t)
	rec := doJSON(t, handler, "POST", "/api/generators/selfie_cam/buy?qty=zero", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSettingsEndpoint(t *testing.T) {
	handler, engine := newTestHandler(t)

	rec := doJSON(t, handler, "POST", "/api/settings", `{"key":"autoSave","value":false}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, engine.Snapshot().Settings.AutoSave)

	rec = doJSON(t, handler, "POST", "/api/settings", `{"key":"volume","value":true}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportImportEndpoints(t *testing.T) {
	handler, engine := newTestHandler(t)
	engine.Click()

	rec := doJSON(t, handler, "GET", "/api/export", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	exported := rec.Body.String()

	rec = doJSON(t, handler, "POST", "/api/import", exported, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, handler, "POST", "/api/import", `{"version":"9.9.9"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestTelemetryStatsEndpoint(t *testing.T) {
	handler, _ := newTestHandler(t)
	doJSON(t, handler, "POST", "/api/click", "", nil)

	var stats telemetry.Stats
	rec := doJSON(t, handler, "GET", "/api/telemetry/stats", "", &stats)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutesAndHealth(t *testing.T) {
	handler, _ := newTestHandler(t)

	var routes []RouteDoc
	rec := doJSON(t, handler, "GET", "/api/routes", "", &routes)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, routes)

	rec = doJSON(t, handler, "GET", "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
