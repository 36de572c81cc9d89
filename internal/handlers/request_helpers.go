package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskboard/internal/apperror"
	"taskboard/internal/validation"
)

const requestTimeout = 5 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// handlePanic turns a panic inside a handler into a 500 for that route.
func handlePanic(c *gin.Context, log *zap.Logger, route string) {
	if r := recover(); r != nil {
		log.Error("panic recovered", zap.String("route", route), zap.Any("panic", r), zap.Stack("stack"))
		c.AbortWithStatusJSON(http.StatusInternalServerError, apperror.Response{
			Code:    apperror.CodeInternal,
			Message: "internal server error",
		})
	}
}

// respondWithError writes err as {"code","message"}. Only internal failures
// are logged at error level; the rest are expected outcomes.
func respondWithError(c *gin.Context, log *zap.Logger, route string, err error) {
	status, body := apperror.ResponseOf(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.String("route", route), zap.Int("status", status), zap.Error(err))
	} else {
		log.Debug("request rejected", zap.String("route", route), zap.Int("status", status), zap.String("code", body.Code))
	}
	c.AbortWithStatusJSON(status, body)
}

// bindJSON decodes the body into req and reports malformed input as a
// validation error.
func bindJSON(c *gin.Context, log *zap.Logger, route string, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondWithError(c, log, route, validation.ErrInvalidParams.With("invalid request body: %v", err))
		return false
	}
	return true
}
