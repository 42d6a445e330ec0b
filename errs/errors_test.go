package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"duplicate key", errors.New(`duplicate key value violates unique constraint "idx_post_likes_post_user"`), http.StatusConflict},
		{"foreign key", errors.New("insert or update on table violates foreign key constraint"), http.StatusBadRequest},
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connection refused"), http.StatusServiceUnavailable},
		{"anything else", errors.New("syntax error at or near"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := NewDatabaseError("insert", "post", tc.cause)
			assert.Equal(t, tc.wantStatus, apiErr.StatusCode)
			assert.Same(t, tc.cause, apiErr.Cause)
		})
	}
}

func TestApiErrUnwrapChain(t *testing.T) {
	cause := errors.New("boom")
	apiErr := NewInternalErrorWithCause("something broke", cause)

	assert.Same(t, cause, apiErr.Cause)
	assert.Contains(t, apiErr.GetFullError(), "boom")
	assert.ErrorIs(t, NewUpstreamFailureError("assistant", cause), ErrUpstreamFailure)
}

func TestValidationErrorStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewMissingRequiredFieldError("content").StatusCode)
	assert.Equal(t, http.StatusBadRequest, NewContentTooLongError("content", 1000).StatusCode)
	assert.Equal(t, http.StatusUnauthorized, NewMissingTokenError().StatusCode)
	assert.Equal(t, http.StatusForbidden, NewInsufficientRoleError("admin").StatusCode)
	assert.Equal(t, http.StatusBadGateway, NewUpstreamFailureError("assistant", errors.New("503")).StatusCode)
	assert.Equal(t, http.StatusInternalServerError, NewEnvironmentVariableError("OPENAI_API_KEY").StatusCode)
}

func TestFieldPropagation(t *testing.T) {
	err := NewContentTooLongError("message", 2000)
	assert.Equal(t, "message", err.Field)
	assert.Contains(t, err.Details, "2000")
}
