package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTypeStatusMapping(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
		typ    ErrorType
	}{
		{NewValidationError("bad input"), http.StatusBadRequest, ErrorTypeValidation},
		{NewNotFoundError("insight", "i1"), http.StatusNotFound, ErrorTypeNotFound},
		{NewStoreError("put", errors.New("throttled")), http.StatusInternalServerError, ErrorTypeStore},
		{NewUpstreamError("regeneration-api", errors.New("timeout")), http.StatusBadGateway, ErrorTypeUpstream},
		{NewUnauthorizedError("no token"), http.StatusUnauthorized, ErrorTypeUnauthorized},
		{NewInternalError("boom"), http.StatusInternalServerError, ErrorTypeInternal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.HTTPStatus, tc.err.Message)
		assert.Equal(t, tc.typ, tc.err.Type)
	}
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("x")))
	assert.True(t, IsNotFound(NewNotFoundError("content", "c1")))
	assert.True(t, IsStore(NewStoreError("scan", errors.New("x"))))
	assert.True(t, IsUpstream(NewUpstreamError("api", errors.New("x"))))

	assert.False(t, IsValidation(NewNotFoundError("content", "c1")))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsStore(nil))
}

func TestWrapPreservesType(t *testing.T) {
	base := NewNotFoundError("insight", "i1")
	wrapped := Wrap(base, "while promoting")

	assert.True(t, IsNotFound(wrapped))
	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Message, "while promoting")
}

func TestWrapPlainError(t *testing.T) {
	wrapped := Wrap(errors.New("disk full"), "saving record")
	appErr := GetAppError(wrapped)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.True(t, errors.Is(wrapped, wrapped))
}

func TestUnwrapChain(t *testing.T) {
	cause := fmt.Errorf("conditional check failed")
	err := NewStoreError("update", cause)
	assert.ErrorIs(t, err, cause)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing"))
}
