package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errWidgetNotFound = New(KindNotFound, "WIDGET_ERR_01", "widget not found")

func TestSentinelMatchesByCode(t *testing.T) {
	err := fmt.Errorf("loading: %w", errWidgetNotFound.With("widget %s not found", "42"))

	assert.ErrorIs(t, err, errWidgetNotFound)
	assert.NotErrorIs(t, err, New(KindNotFound, "OTHER", "other"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Contains(t, err.Error(), "widget 42 not found")
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("insert widget", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:           http.StatusNotFound,
		KindInvalidCredentials: http.StatusUnauthorized,
		KindUnauthorized:       http.StatusUnauthorized,
		KindExpired:            http.StatusUnauthorized,
		KindAlreadyUsed:        http.StatusBadRequest,
		KindConflict:           http.StatusConflict,
		KindValidation:         http.StatusBadRequest,
		KindUnavailable:        http.StatusServiceUnavailable,
	}
	for kind, status := range cases {
		assert.Equal(t, status, HTTPStatus(New(kind, "X", "x")), kind.String())
	}
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestResponseOfHidesInternalCause(t *testing.T) {
	status, body := ResponseOf(Internal("insert widget", errors.New("E11000 duplicate key")))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, Response{Code: CodeInternal, Message: "internal server error"}, body)

	status, body = ResponseOf(errors.New("plain"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, CodeInternal, body.Code)

	status, body = ResponseOf(New(KindNotFound, "WIDGET_ERR_01", "widget not found").With("widget %d not found", 7))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, Response{Code: "WIDGET_ERR_01", Message: "widget 7 not found"}, body)
}
