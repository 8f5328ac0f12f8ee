// AngelaMos | 2026
// errors_test.go

package core

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WrapsSentinels(t *testing.T) {
	assert.True(t, errors.Is(ServiceUnavailableError(""), ErrServiceUnavailable))
	assert.True(t, errors.Is(UploadFailedError(""), ErrUploadFailed))
	assert.True(t, errors.Is(NotFoundError("project"), ErrNotFound))
	assert.True(t, errors.Is(UnauthorizedError(""), ErrUnauthorized))
}

func TestJSONError_AppErrorMapping(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, ServiceUnavailableError("document storage is not configured"))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	assert.Equal(t, "document storage is not configured", body.Error.Message)
}

func TestJSONError_UnknownErrorIsOpaque(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internal detail must never leak into the response body.
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), "INTERNAL")
}

func TestUploadFailedError_Status(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, UploadFailedError("uploading \"a.pdf\" to document storage failed"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "UPLOAD_FAILED")
}
