package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LuizVenosa/GraficoCameraSite/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("NEO4J_URI", "bolt://localhost:7687")
	t.Setenv("NEO4J_USER", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "password")
	t.Setenv("VOTEGRAPH_OUTPUT", "out/graph.json")
	t.Setenv("VOTEGRAPH_DEBUG", "true")

	cfg := LoadConfig()

	if cfg.Neo4jURI != "bolt://localhost:7687" {
		t.Errorf("expected Neo4jURI to be 'bolt://localhost:7687', got '%s'", cfg.Neo4jURI)
	}
	if cfg.Neo4jUser != "neo4j" {
		t.Errorf("expected Neo4jUser to be 'neo4j', got '%s'", cfg.Neo4jUser)
	}
	if cfg.OutputPath != "out/graph.json" {
		t.Errorf("expected OutputPath to be 'out/graph.json', got '%s'", cfg.OutputPath)
	}
	if !cfg.Debug {
		t.Error("expected Debug to be true")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("VOTEGRAPH_VOTES", "")
	t.Setenv("VOTEGRAPH_DEBUG", "not-a-bool")

	cfg := LoadConfig()

	assert.Equal(t, "data/votes_pivot.csv", cfg.VotesPath)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.False(t, cfg.Debug)
}

func TestLoadEnv(t *testing.T) {
	tempDir := t.TempDir()

	envContent := "TEST_ENV_VAR=loaded_successfully"
	envFile := filepath.Join(tempDir, ".env")
	if err := os.WriteFile(envFile, []byte(envContent), 0644); err != nil {
		t.Fatalf("Failed to create .env file: %v", err)
	}

	subDir := filepath.Join(tempDir, "subdir", "deep", "nested")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current working directory: %v", err)
	}
	defer os.Chdir(wd)

	if err := os.Chdir(subDir); err != nil {
		t.Fatalf("Failed to change working directory: %v", err)
	}

	if err := LoadEnv(); err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}

	if val := os.Getenv("TEST_ENV_VAR"); val != "loaded_successfully" {
		t.Errorf("Expected TEST_ENV_VAR to be 'loaded_successfully', got '%s'", val)
	}

	os.Unsetenv("TEST_ENV_VAR")
}

func TestLoadParams(t *testing.T) {
	params, err := LoadParams("")
	require.NoError(t, err)
	assert.Equal(t, pipeline.DefaultParams(), params)

	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 0.8\nlayout:\n  iterations: 100\n"), 0644))

	params, err = LoadParams(path)
	require.NoError(t, err)
	assert.Equal(t, 0.8, params.Threshold)
	assert.Equal(t, 11, params.TopK)
	assert.Equal(t, 100, params.Layout.Iterations)
	assert.Equal(t, 0.2, params.Layout.K)
	assert.Equal(t, int64(58), params.Layout.Seed)
}

func TestLoadParams_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("top_k: -3\n"), 0644))
	_, err := LoadParams(bad)
	assert.Error(t, err)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("threshold: [\n"), 0644))
	_, err = LoadParams(broken)
	assert.Error(t, err)

	_, err = LoadParams(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
