package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
)

// detailResponse is the envelope every failure shares with the caller.
type detailResponse struct {
	Detail string `json:"detail"`
}

// Normalize ensures we always have an APIError to surface.
func Normalize(err error) *APIError {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return &APIError{
		Code:   ErrCodeInternal,
		Detail: "Internal server error",
		Status: http.StatusInternalServerError,
	}
}

// WriteError writes err as the JSON detail envelope with its mapped status.
func WriteError(w http.ResponseWriter, err error) {
	apiErr := Normalize(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	_ = json.NewEncoder(w).Encode(detailResponse{Detail: apiErr.Detail})
}

// WriteJSON writes v as a JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
