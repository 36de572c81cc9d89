package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default.yml", `
web_app_host: http://localhost:3000
mongodb:
  uri: mongodb://default
  database: taskboard
accounts:
  token_expires_in_seconds: 3600
`)
	writeFile(t, dir, "testing.yml", `
mongodb:
  uri: mongodb://testing
`)
	writeFile(t, dir, "custom-environment-variables.yml", `
mongodb:
  uri: TB_TEST_MONGODB_URI
accounts:
  token_expires_in_seconds:
    __name: TB_TEST_TOKEN_TTL
    __format: number
`)
	t.Setenv("TB_TEST_MONGODB_URI", "mongodb://env")

	cfg, err := Load(dir, "testing")
	require.NoError(t, err)

	assert.Equal(t, "mongodb://env", cfg.StringOr("mongodb.uri", ""))
	assert.Equal(t, "taskboard", cfg.StringOr("mongodb.database", ""))
	assert.Equal(t, "http://localhost:3000", cfg.StringOr("web_app_host", ""))
	// TB_TEST_TOKEN_TTL is unset, so the default survives.
	assert.Equal(t, 3600, cfg.IntOr("accounts.token_expires_in_seconds", 0))
}

func TestLoadEnvironmentFileOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default.yml", "logger:\n  level: info\n  development: false\n")
	writeFile(t, dir, "production.yml", "logger:\n  level: warn\n")

	cfg, err := Load(dir, "production")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.StringOr("logger.level", ""))
	assert.False(t, cfg.BoolOr("logger.development", true))
}

func TestLoadRequiresDefaultFile(t *testing.T) {
	_, err := Load(t.TempDir(), "development")
	require.Error(t, err)
}

func TestLoadFailsOnUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default.yml", "server:\n  port: 8080\n")
	writeFile(t, dir, "custom-environment-variables.yml", `
server:
  port:
    __name: TB_TEST_PORT
    __format: duration
`)
	t.Setenv("TB_TEST_PORT", "10s")

	_, err := Load(dir, "development")
	var formatErr *UnsupportedFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "duration", formatErr.Format)
	assert.Equal(t, "server.port", formatErr.Key)
}

func TestLoadFailsOnUnparsableNumber(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "default.yml", "server:\n  port: 8080\n")
	writeFile(t, dir, "custom-environment-variables.yml", `
server:
  port:
    __name: TB_TEST_PORT
    __format: number
`)
	t.Setenv("TB_TEST_PORT", "eighty")

	_, err := Load(dir, "development")
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "eighty", parseErr.Value)
}

func TestGetWalksDottedKeys(t *testing.T) {
	cfg := New(map[string]any{
		"mailer": map[string]any{
			"default_email": "noreply@example.com",
			"enabled":       false,
		},
		"web_app_host": "http://localhost",
	})

	value, ok := cfg.Get("mailer.default_email")
	require.True(t, ok)
	assert.Equal(t, "noreply@example.com", value)

	value, ok = cfg.Get("mailer.enabled")
	require.True(t, ok)
	assert.Equal(t, false, value)

	_, ok = cfg.Get("mailer.missing")
	assert.False(t, ok)

	// a scalar reached with segments left over is not a match
	_, ok = cfg.Get("web_app_host.port")
	assert.False(t, ok)

	assert.True(t, cfg.Has("mailer"))
	assert.False(t, cfg.Has("sms"))
	assert.Equal(t, "fallback", cfg.GetOr("sms.provider", "fallback"))
}

func TestValueReportsMissingKey(t *testing.T) {
	cfg := New(nil)

	_, err := cfg.Value("accounts.token_signing_key")
	var missing *MissingKeyError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "accounts.token_signing_key", missing.Key)

	_, err = cfg.String("accounts.token_signing_key")
	require.ErrorAs(t, err, &missing)
}

func TestTypedAccessors(t *testing.T) {
	cfg := New(map[string]any{
		"server": map[string]any{"port": uint64(8080), "debug": "TRUE"},
		"otp": map[string]any{
			"default_phone_numbers": []any{"+15555550100", " +15555550101 "},
			"csv":                   "+1, +2,,",
		},
		"ratio": 1.5,
	})

	port, err := cfg.Int("server.port")
	require.NoError(t, err)
	assert.Equal(t, 8080, port)

	debug, err := cfg.Bool("server.debug")
	require.NoError(t, err)
	assert.True(t, debug)

	_, err = cfg.Int("ratio")
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)

	assert.Equal(t, []string{"+15555550100", "+15555550101"}, cfg.StringSlice("otp.default_phone_numbers"))
	assert.Equal(t, []string{"+1", "+2"}, cfg.StringSlice("otp.csv"))
	assert.Nil(t, cfg.StringSlice("otp.none"))
}

func TestDeepMergeDoesNotMutateInputs(t *testing.T) {
	base := map[string]any{"a": map[string]any{"b": 1, "c": 2}}
	override := map[string]any{"a": map[string]any{"b": 10}, "d": "x"}

	merged := DeepMerge(base, override)

	assert.Equal(t, map[string]any{"a": map[string]any{"b": 10, "c": 2}, "d": "x"}, merged)
	assert.Equal(t, 1, base["a"].(map[string]any)["b"])
}

func TestDeepMergeScalarReplacesMap(t *testing.T) {
	merged := DeepMerge(
		map[string]any{"a": map[string]any{"b": 1}},
		map[string]any{"a": "flat"},
	)
	assert.Equal(t, "flat", merged["a"])
}

func TestEnvironmentOverrides(t *testing.T) {
	env := map[string]string{
		"A":    "plain",
		"FLAG": "1",
		"OFF":  "yes",
		"INT":  "42",
		"REAL": "-0.5",
	}
	lookup := func(name string) (string, bool) {
		value, ok := env[name]
		return value, ok
	}

	got, err := EnvironmentOverrides(map[string]any{
		"a":     "A",
		"unset": "NOT_SET",
		"nested": map[string]any{
			"flag": map[string]any{"__name": "FLAG", "__format": "boolean"},
			"off":  map[string]any{"__name": "OFF", "__format": "boolean"},
			"int":  map[string]any{"__name": "INT", "__format": "number"},
			"real": map[string]any{"__name": "REAL", "__format": "number"},
			"raw":  map[string]any{"__name": "INT"},
		},
		"empty": map[string]any{"x": "NOT_SET"},
	}, lookup)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"a": "plain",
		"nested": map[string]any{
			"flag": true,
			"off":  false,
			"int":  42,
			"real": -0.5,
			"raw":  "42",
		},
	}, got)
}
