package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/campus-content/pkg/campus/api"
	"github.com/tendant/campus-content/pkg/campus/config"
)

func setupServer(t *testing.T, opts ...config.Option) http.Handler {
	t.Helper()
	cfg, err := config.Load(opts...)
	require.NoError(t, err)

	repo, err := cfg.BuildRepository(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return newRouter(cfg, api.NewHandler(repo))
}

func TestHealthz(t *testing.T) {
	router := setupServer(t)

	for _, path := range []string{"/healthz", "/healthz/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestSeededContentIsServed(t *testing.T) {
	router := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/programs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var programs []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &programs))
	assert.Len(t, programs, 3)
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestProductionHasNoCORS(t *testing.T) {
	router := setupServer(t, config.WithEnvironment("production"), config.WithSeedOnStart(false))

	req := httptest.NewRequest(http.MethodOptions, "/api/programs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPanicsAreRecovered(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	router := newRouter(cfg, api.NewHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/programs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
