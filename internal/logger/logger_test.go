package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, levelFromString("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, levelFromString("warning"))
	assert.Equal(t, zapcore.ErrorLevel, levelFromString("error"))
	assert.Equal(t, zapcore.InfoLevel, levelFromString("nonsense"))
}

func TestNewHonoursLevel(t *testing.T) {
	log, err := New(Options{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestGinMiddlewareLogsClientErrorsAsWarnings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(GinMiddleware(zap.New(core)))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, int64(http.StatusNotFound), entries[0].ContextMap()["status"])
}
