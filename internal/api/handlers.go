// internal/api/handlers.go
package api

import (
	"errors"
	"fmt"
	"net/http"

	apperrors "mergington-activities/internal/common/errors"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/metrics"
	"mergington-activities/internal/registry"
)

// messageResponse is the envelope successful mutations share with the caller.
type messageResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	registry *registry.Registry
	logger   logger.Logger
}

func NewHandler(reg *registry.Registry, log logger.Logger) *Handler {
	return &Handler{
		registry: reg,
		logger:   log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// ListActivities serves GET /activities: the full name-to-activity mapping.
func (h *Handler) ListActivities(w http.ResponseWriter, r *http.Request) {
	apperrors.WriteJSON(w, http.StatusOK, h.registry.Snapshot())
}

// Signup serves POST /activities/{name}/signup?email=...
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		h.writeError(w, r, apperrors.NewMissingParameterError("email"))
		return
	}

	if err := h.registry.Signup(name, email); err != nil {
		h.writeError(w, r, h.mapRegistryError(err, name, email))
		return
	}

	metrics.SignupsTotal.WithLabelValues(name).Inc()
	h.logger.Info("participant signed up", map[string]interface{}{
		"activity": name,
		"email":    email,
	})

	apperrors.WriteJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

// Unregister serves POST /activities/{name}/unregister?email=...
func (h *Handler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")
	if email == "" {
		h.writeError(w, r, apperrors.NewMissingParameterError("email"))
		return
	}

	if err := h.registry.Unregister(name, email); err != nil {
		h.writeError(w, r, h.mapRegistryError(err, name, email))
		return
	}

	metrics.UnregistersTotal.WithLabelValues(name).Inc()
	h.logger.Info("participant unregistered", map[string]interface{}{
		"activity": name,
		"email":    email,
	})

	apperrors.WriteJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

// mapRegistryError converts registry sentinel errors to client-facing APIErrors.
func (h *Handler) mapRegistryError(err error, name, email string) *apperrors.APIError {
	switch {
	case errors.Is(err, registry.ErrActivityNotFound):
		return apperrors.NewActivityNotFoundError(name)
	case errors.Is(err, registry.ErrAlreadySignedUp):
		return apperrors.NewAlreadySignedUpError(email, name)
	case errors.Is(err, registry.ErrNotSignedUp):
		return apperrors.NewNotSignedUpError(email, name)
	default:
		return apperrors.Normalize(err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apperrors.Normalize(err)

	metrics.RequestErrors.WithLabelValues(r.URL.Path, string(apiErr.Code)).Inc()
	h.logger.Warn("request failed", map[string]interface{}{
		"method":    r.Method,
		"path":      r.URL.Path,
		"errorCode": string(apiErr.Code),
		"detail":    apiErr.Detail,
		"status":    apiErr.Status,
	})

	apperrors.WriteError(w, apiErr)
}
