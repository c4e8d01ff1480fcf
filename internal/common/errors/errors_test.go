// internal/common/errors/errors_test.go
package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *APIError
		wantCode   ErrorCode
		wantStatus int
		wantDetail string
	}{
		{
			name:       "activity not found",
			err:        NewActivityNotFoundError("Chess Club"),
			wantCode:   ErrCodeActivityNotFound,
			wantStatus: http.StatusNotFound,
			wantDetail: "Activity not found",
		},
		{
			name:       "already signed up",
			err:        NewAlreadySignedUpError("michael@mergington.edu", "Chess Club"),
			wantCode:   ErrCodeAlreadySignedUp,
			wantStatus: http.StatusBadRequest,
			wantDetail: "michael@mergington.edu is already signed up for Chess Club",
		},
		{
			name:       "not signed up",
			err:        NewNotSignedUpError("michael@mergington.edu", "Chess Club"),
			wantCode:   ErrCodeNotSignedUp,
			wantStatus: http.StatusBadRequest,
			wantDetail: "michael@mergington.edu is not signed up for Chess Club",
		},
		{
			name:       "missing parameter",
			err:        NewMissingParameterError("email"),
			wantCode:   ErrCodeMissingParameter,
			wantStatus: http.StatusBadRequest,
			wantDetail: "Missing required query parameter: email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantDetail, tt.err.Detail)
			assert.Contains(t, tt.err.Error(), string(tt.wantCode))
		})
	}
}

func TestNormalize_PassesThroughAPIError(t *testing.T) {
	apiErr := NewActivityNotFoundError("Chess Club")
	assert.Same(t, apiErr, Normalize(apiErr))
}

func TestNormalize_WrapsUnknownError(t *testing.T) {
	got := Normalize(stderrors.New("boom"))
	assert.Equal(t, ErrCodeInternal, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "Internal server error", got.Detail)
}

func TestWriteError_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, NewAlreadySignedUpError("michael@mergington.edu", "Chess Club"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "michael@mergington.edu is already signed up for Chess Club", body["detail"])
}
