package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		errType ErrorType
		want    int
	}{
		{AuthError, http.StatusUnauthorized},
		{NotFoundError, http.StatusNotFound},
		{ValidationError, http.StatusBadRequest},
		{BadRequestError, http.StatusBadRequest},
		{ConflictError, http.StatusForbidden},
		{UnchangedError, http.StatusNotModified},
		{UnavailableError, http.StatusServiceUnavailable},
		{DatabaseError, http.StatusInternalServerError},
		{ConfigError, http.StatusInternalServerError},
		{InternalError, http.StatusInternalServerError},
		{MigrationError, http.StatusInternalServerError},
		{UnknownError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := New(tt.errType, "msg", nil)
		assert.Equal(t, tt.want, err.StatusCode())
	}
}

func TestErrorString(t *testing.T) {
	bare := NewNotFoundError("Article not found", nil)
	assert.Equal(t, "Article not found", bare.Error())

	wrapped := NewDatabaseError("query failed", errors.New("connection reset"))
	assert.Equal(t, "query failed: connection reset", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	underlying := errors.New("no rows")
	err := NewNotFoundError("Article not found", underlying)
	assert.True(t, errors.Is(err, underlying))
}

func TestToResponseExposesOnlyMessage(t *testing.T) {
	err := NewDatabaseError("Something went wrong", errors.New("dsn=postgres://secret"))
	body, jsonErr := json.Marshal(err.ToResponse())
	require.NoError(t, jsonErr)
	assert.JSONEq(t, `{"msg":"Something went wrong"}`, string(body))
}

func TestFromError(t *testing.T) {
	ae, ok := FromError(nil)
	assert.False(t, ok)
	assert.Nil(t, ae)

	ae, ok = FromError(errors.New("plain"))
	assert.False(t, ok)
	assert.Nil(t, ae)

	original := NewAuthError("Invalid token", nil)
	ae, ok = FromError(original)
	require.True(t, ok)
	assert.Same(t, original, ae)

	// Extraction works through wrapping.
	wrapped := fmt.Errorf("handler: %w", original)
	ae, ok = FromError(wrapped)
	require.True(t, ok)
	assert.Same(t, original, ae)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("gone", nil)))
	assert.True(t, IsAuthError(NewAuthError("no", nil)))
	assert.True(t, IsValidationError(NewValidationError("bad", nil)))
	assert.True(t, IsConflict(NewConflictError("dup", nil)))
	assert.True(t, IsUnchanged(NewUnchangedError("same")))

	assert.False(t, IsNotFound(NewAuthError("no", nil)))
	assert.False(t, IsConflict(errors.New("plain")))
	assert.False(t, IsUnchanged(nil))
}
