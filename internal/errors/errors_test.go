package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorMessage(t *testing.T) {
	cause := errors.New("open failed")
	err := NewStorageError("cannot write export", cause)

	assert.Equal(t, "[STORAGE] cannot write export: open failed", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestAppErrorWithoutCause(t *testing.T) {
	err := NewValidationError("department selector requires a code or a name", nil)
	assert.Equal(t, "[VALIDATION] department selector requires a code or a name", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestIsType(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{"matching type", NewConfigError("bad config", nil), ErrTypeConfig, true},
		{"different type", NewConfigError("bad config", nil), ErrTypeParsing, false},
		{"plain error", errors.New("plain"), ErrTypeConfig, false},
		{"nil error", nil, ErrTypeConfig, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsType(tt.err, tt.errType))
		})
	}
}

func TestWithContext(t *testing.T) {
	err := NewNotFoundError("department not found", nil).
		WithContext("selector", "434")

	assert.Equal(t, "434", err.Context["selector"])
}

func TestNotFoundError(t *testing.T) {
	apiErr := NotFoundError("snapshot")
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.ErrorCode)
	assert.Equal(t, "snapshot not found", apiErr.Message)
}

func TestInternalServerError(t *testing.T) {
	apiErr := InternalServerError(errors.New("template exploded"))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "template exploded", apiErr.Details)
}
