package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/LuizVenosa/GraficoCameraSite/internal/pipeline"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds file locations, the server address and the Neo4j connection.
type Config struct {
	VotesPath   string
	PartiesPath string
	OutputPath  string
	StaticDir   string
	ListenAddr  string
	Debug       bool

	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
	Neo4jDatabase string
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() Config {
	return Config{
		VotesPath:   getEnv("VOTEGRAPH_VOTES", "data/votes_pivot.csv"),
		PartiesPath: getEnv("VOTEGRAPH_PARTIES", "data/partidos.csv"),
		OutputPath:  getEnv("VOTEGRAPH_OUTPUT", "static/graph.json"),
		StaticDir:   getEnv("VOTEGRAPH_STATIC", "static"),
		ListenAddr:  getEnv("VOTEGRAPH_ADDR", ":5000"),
		Debug:       getEnvBool("VOTEGRAPH_DEBUG", false),

		Neo4jURI:      os.Getenv("NEO4J_URI"),
		Neo4jUser:     os.Getenv("NEO4J_USER"),
		Neo4jPassword: os.Getenv("NEO4J_PASSWORD"),
		Neo4jDatabase: os.Getenv("NEO4J_DATABASE"),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// LoadEnv loads environment variables from a .env file, searching up the directory tree.
func LoadEnv() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// Not found is fine
	return nil
}

// LoadParams reads pipeline parameters from a YAML file. Keys absent from
// the file keep their defaults. An empty path returns the defaults.
func LoadParams(path string) (pipeline.Params, error) {
	params := pipeline.DefaultParams()
	if path == "" {
		return params, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("read params: %w", err)
	}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return params, fmt.Errorf("parse params %s: %w", path, err)
	}
	if err := params.Validate(); err != nil {
		return params, fmt.Errorf("%s: %w", path, err)
	}
	return params, nil
}
