package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	forbidden := NewForbidden(CodeRoleNotAllowed, "insufficient permissions", "role not allowed")
	wrapped := fmt.Errorf("guard: %w", forbidden)
	got := ToDomainError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, CodeRoleNotAllowed, got.Code)
	assert.Equal(t, http.StatusForbidden, got.HTTPStatus)

	cause := errors.New("boom")
	got = ToDomainError(cause)
	assert.Equal(t, CodeInternal, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
	assert.ErrorIs(t, got, cause)
}

func TestDomainError_ErrorString(t *testing.T) {
	assert.Equal(t, "token expired", NewDomainError(CodeTokenExpired, "token expired", "", 401).Error())
	assert.Equal(t, "internal server error: db down", NewInternalError(errors.New("db down")).Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"unauthorized", NewUnauthorized(CodeTokenMissing, "token required", "x"), CodeTokenMissing, http.StatusUnauthorized},
		{"bad request", NewBadRequest("invalid id", "x"), CodeBadRequest, http.StatusBadRequest},
		{"not found", NewNotFound("principal"), CodeNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var de *DomainError
			require.ErrorAs(t, tt.err, &de)
			assert.Equal(t, tt.code, de.Code)
			assert.Equal(t, tt.status, de.HTTPStatus)
		})
	}
	assert.Equal(t, "principal not found", NewNotFound("principal").Error())
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		status int
		code   string
	}{
		{http.StatusNotFound, CodeNotFound},
		{http.StatusUnauthorized, CodeUnauthorized},
		{http.StatusForbidden, CodeForbidden},
		{http.StatusBadRequest, CodeBadRequest},
		{http.StatusServiceUnavailable, CodeInternal},
		{http.StatusMethodNotAllowed, "HTTP_405"},
	}
	for _, tt := range tests {
		got := FromStatus(tt.status, "detail")
		assert.Equal(t, tt.code, got.Code)
		assert.Equal(t, tt.status, got.HTTPStatus)
		assert.Equal(t, http.StatusText(tt.status), got.Message)
		assert.Equal(t, "detail", got.Detail)
	}
}
