package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const keySeparator = "."

// Config is the merged, read-only configuration tree. It is built once at
// startup and handed to whatever needs it.
type Config struct {
	store map[string]any
}

// New wraps an already merged tree. Nested maps must be map[string]any.
func New(store map[string]any) *Config {
	if store == nil {
		store = map[string]any{}
	}
	return &Config{store: store}
}

// Get walks a dotted key. A missing segment, or a non-map value reached while
// segments remain, reports not found.
func (c *Config) Get(key string) (any, bool) {
	var current any = c.store
	for _, segment := range strings.Split(key, keySeparator) {
		values, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := values[segment]
		if !ok || next == nil {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Has reports whether key resolves to a value.
func (c *Config) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// GetOr returns the value at key or def when absent.
func (c *Config) GetOr(key string, def any) any {
	if value, ok := c.Get(key); ok {
		return value
	}
	return def
}

// Value returns the value at key or a *MissingKeyError.
func (c *Config) Value(key string) (any, error) {
	value, ok := c.Get(key)
	if !ok {
		return nil, &MissingKeyError{Key: key}
	}
	return value, nil
}

func (c *Config) String(key string) (string, error) {
	value, err := c.Value(key)
	if err != nil {
		return "", err
	}
	switch typed := value.(type) {
	case string:
		return typed, nil
	case map[string]any, []any:
		return "", &TypeError{Key: key, Want: "string", Got: value}
	default:
		return fmt.Sprint(typed), nil
	}
}

func (c *Config) StringOr(key, def string) string {
	value, err := c.String(key)
	if err != nil {
		return def
	}
	return value
}

func (c *Config) Int(key string) (int, error) {
	value, err := c.Value(key)
	if err != nil {
		return 0, err
	}
	n, ok := toInt(value)
	if !ok {
		return 0, &TypeError{Key: key, Want: "integer", Got: value}
	}
	return n, nil
}

func (c *Config) IntOr(key string, def int) int {
	n, err := c.Int(key)
	if err != nil {
		return def
	}
	return n
}

func (c *Config) Bool(key string) (bool, error) {
	value, err := c.Value(key)
	if err != nil {
		return false, err
	}
	switch typed := value.(type) {
	case bool:
		return typed, nil
	case string:
		return parseBoolean(typed), nil
	default:
		return false, &TypeError{Key: key, Want: "boolean", Got: value}
	}
}

func (c *Config) BoolOr(key string, def bool) bool {
	b, err := c.Bool(key)
	if err != nil {
		return def
	}
	return b
}

// SecondsOr reads an integer number of seconds as a duration.
func (c *Config) SecondsOr(key string, def time.Duration) time.Duration {
	n, err := c.Int(key)
	if err != nil {
		return def
	}
	return time.Duration(n) * time.Second
}

// StringSlice accepts a YAML sequence or a comma separated string, so list
// values can also be overridden from a single environment variable.
func (c *Config) StringSlice(key string) []string {
	value, ok := c.Get(key)
	if !ok {
		return nil
	}
	var raw []string
	switch typed := value.(type) {
	case []any:
		for _, item := range typed {
			raw = append(raw, fmt.Sprint(item))
		}
	case []string:
		raw = typed
	case string:
		raw = strings.Split(typed, ",")
	default:
		raw = []string{fmt.Sprint(typed)}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func toInt(value any) (int, bool) {
	switch typed := value.(type) {
	case int:
		return typed, true
	case int8:
		return int(typed), true
	case int16:
		return int(typed), true
	case int32:
		return int(typed), true
	case int64:
		return int(typed), true
	case uint:
		return int(typed), true
	case uint8:
		return int(typed), true
	case uint16:
		return int(typed), true
	case uint32:
		return int(typed), true
	case uint64:
		return int(typed), true
	case float32:
		return int(typed), float32(int(typed)) == typed
	case float64:
		return int(typed), float64(int(typed)) == typed
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(typed))
		return n, err == nil
	default:
		return 0, false
	}
}
