package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_ServesStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>graph</html>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "graph.json"), []byte(`{"nodes":[],"links":[]}`), 0644))

	srv := httptest.NewServer(NewRouter(dir, "graph.json"))
	defer srv.Close()

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/", http.StatusOK, "<html>graph</html>"},
		{"/graph.json", http.StatusOK, `{"nodes":[],"links":[]}`},
		{"/healthz", http.StatusOK, "ok"},
		{"/missing.js", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.body != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.body, string(body))
			}
		})
	}
}

func TestRouter_HealthWithoutGraph(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(t.TempDir(), "graph.json").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListenAndServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, ListenAndServe(ctx, "127.0.0.1:0", http.NotFoundHandler()))
}
