package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	envNameKey   = "__name"
	envFormatKey = "__format"

	formatBoolean = "boolean"
	formatNumber  = "number"
)

// EnvironmentOverrides resolves a custom-environment-variables tree against
// the process environment. A string leaf names an environment variable; a map
// holding __name (and optionally __format) names a variable with coercion.
// Unset variables contribute nothing, and branches left empty are dropped.
func EnvironmentOverrides(layout map[string]any, lookup func(string) (string, bool)) (map[string]any, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return resolveOverrides(layout, "", lookup)
}

func resolveOverrides(layout map[string]any, prefix string, lookup func(string) (string, bool)) (map[string]any, error) {
	out := map[string]any{}
	for key, value := range layout {
		path := key
		if prefix != "" {
			path = prefix + keySeparator + key
		}

		switch typed := value.(type) {
		case string:
			if envValue, ok := lookup(typed); ok {
				out[key] = envValue
			}
		case map[string]any:
			if name, ok := typed[envNameKey].(string); ok {
				envValue, set := lookup(name)
				if !set {
					continue
				}
				format, _ := typed[envFormatKey].(string)
				if format == "" {
					out[key] = envValue
					continue
				}
				parsed, err := parseValue(path, envValue, format)
				if err != nil {
					return nil, err
				}
				out[key] = parsed
				continue
			}
			nested, err := resolveOverrides(typed, path, lookup)
			if err != nil {
				return nil, err
			}
			if len(nested) > 0 {
				out[key] = nested
			}
		}
	}
	return out, nil
}

func parseValue(key, value, format string) (any, error) {
	switch format {
	case formatBoolean:
		return parseBoolean(value), nil
	case formatNumber:
		if isDigits(value) {
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, &ParseError{Key: key, Value: value, Format: format, Err: err}
			}
			return n, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, &ParseError{Key: key, Value: value, Format: format, Err: err}
		}
		return f, nil
	default:
		return nil, &UnsupportedFormatError{Key: key, Format: format}
	}
}

func parseBoolean(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1":
		return true
	default:
		return false
	}
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
