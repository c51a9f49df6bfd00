package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHTTPCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected int
	}{
		{"not found", NotFound("episodio", 42), http.StatusNotFound},
		{"already exists", AlreadyExists("episodio", "Pilot"), http.StatusConflict},
		{"singleton violation", SingletonViolation("profile"), http.StatusMethodNotAllowed},
		{"invalid feed", InvalidFeed("http://example.com/rss", nil), http.StatusBadRequest},
		{"operation failed", OperationFailed("could not save", stderrors.New("boom")), http.StatusBadRequest},
		{"validation", ValidationError("titulo", "required"), http.StatusBadRequest},
		{"database", DatabaseError("insert", stderrors.New("locked")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.GetHTTPCode())
			assert.Equal(t, tt.expected, GetHTTPCode(tt.err))
		})
	}
}

func TestWrappedAppError(t *testing.T) {
	cause := stderrors.New("connection refused")
	appErr := InvalidFeed("http://example.com/rss", cause)
	wrapped := fmt.Errorf("importing: %w", appErr)

	assert.True(t, Is(wrapped, ErrCodeInvalidFeed))
	assert.False(t, Is(wrapped, ErrCodeNotFound))
	assert.Equal(t, ErrCodeInvalidFeed, GetCode(wrapped))
	assert.Equal(t, http.StatusBadRequest, GetHTTPCode(wrapped))
	assert.Equal(t, "invalid or unreachable feed", GetMessage(wrapped))
	assert.ErrorIs(t, wrapped, cause)
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestPlainErrors(t *testing.T) {
	err := stderrors.New("plain")

	assert.Equal(t, ErrCodeInternal, GetCode(err))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(err))
	assert.Equal(t, "internal error", GetMessage(err))
}

func TestWithDetail(t *testing.T) {
	err := NotFound("profile", 1)

	assert.Equal(t, "profile", err.Details["resource"])
	assert.Equal(t, 1, err.Details["id"])
	assert.Equal(t, "profile with id 1 not found", err.Message)
}
