package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

const (
	defaultFile        = "default.yml"
	customEnvFile      = "custom-environment-variables.yml"
	defaultEnvironment = "development"
)

// LoadFromEnvironment loads .env (best effort), then reads the layers from
// CONFIG_DIR (default "config") for APP_ENV (default "development").
func LoadFromEnvironment() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Println(".env not loaded:", err)
	}
	dir := getEnvOrDefault("CONFIG_DIR", "config")
	env := getEnvOrDefault("APP_ENV", defaultEnvironment)
	return Load(dir, env)
}

// Load merges default.yml, <env>.yml and the environment variable overrides
// declared in custom-environment-variables.yml, in that order.
func Load(dir, env string) (*Config, error) {
	defaults, err := readYAML(filepath.Join(dir, defaultFile), true)
	if err != nil {
		return nil, err
	}

	envContent, err := readYAML(filepath.Join(dir, env+".yml"), false)
	if err != nil {
		return nil, err
	}

	overrideLayout, err := readYAML(filepath.Join(dir, customEnvFile), false)
	if err != nil {
		return nil, err
	}
	overrides, err := EnvironmentOverrides(overrideLayout, os.LookupEnv)
	if err != nil {
		return nil, err
	}

	return New(DeepMerge(defaults, envContent, overrides)), nil
}

func readYAML(path string, required bool) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	normalized, _ := normalize(raw).(map[string]any)
	if normalized == nil {
		normalized = map[string]any{}
	}
	return normalized, nil
}

// normalize turns every decoded mapping into map[string]any so lookups and
// merges only deal with one map type.
func normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = normalize(item)
		}
		return out
	default:
		return value
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
