package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ToHTTPError(t *testing.T) {
	appErr := NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)

	body, err := json.Marshal(appErr.ToHTTPError())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, "ACCOUNT_NOT_FOUND", decoded["code"])
	assert.Equal(t, "Account not found", decoded["message"])
	assert.Contains(t, decoded, "data")
	assert.Nil(t, decoded["data"])
}

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	assert.Equal(t, "INTERNAL_ERROR: An internal error occurred: connection refused", appErr.Error())
	assert.True(t, errors.Is(appErr, cause))

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	assert.Equal(t, "INVALID_REQUEST: Invalid request", simple.Error())
	assert.Nil(t, simple.Unwrap())
}
