package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/pagesum/openai"
	"github.com/joho/godotenv"
)

// Config holds settings read from the environment and the .env file.
type Config struct {
	NebiusAPIKey  string `env:"NEBIUS_API_KEY"`
	NebiusBaseURL string `env:"NEBIUS_BASE_URL"`
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	ExtensionDir  string `env:"PAGESUM_EXTENSION_DIR"`
	Browser       string `env:"PAGESUM_BROWSER"`
}

// LoadConfig parses Config from environ.
func LoadConfig(environ map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environ})
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.NebiusBaseURL == "" {
		cfg.NebiusBaseURL = openai.DefaultBaseURL
	}
	return cfg, nil
}

// loadEnviron returns base merged with the variables in dotEnvPath.
// Variables already present in base win. A missing file is not an error.
func loadEnviron(base map[string]string, dotEnvPath string) (map[string]string, error) {
	environ := make(map[string]string, len(base))
	for k, v := range base {
		environ[k] = v
	}
	if dotEnvPath == "" {
		return environ, nil
	}

	vals, err := godotenv.Read(dotEnvPath)
	if errors.Is(err, os.ErrNotExist) {
		return environ, nil
	} else if err != nil {
		return nil, fmt.Errorf("read %s: %w", dotEnvPath, err)
	}
	for k, v := range vals {
		if _, ok := environ[k]; !ok {
			environ[k] = v
		}
	}
	return environ, nil
}

func processEnviron() map[string]string {
	return env.ToMap(os.Environ())
}
