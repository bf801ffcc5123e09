// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quicktest/backend/internal/auth"
	"github.com/quicktest/backend/internal/domain/quiztest"
	"github.com/quicktest/backend/internal/domain/usagestats"
	"github.com/quicktest/backend/internal/domain/user"
	"github.com/quicktest/backend/internal/service"
	"github.com/quicktest/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store  store.Store
	quiz   *service.QuizService
	auth   *auth.Service
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s store.Store, quiz *service.QuizService, authSvc *auth.Service, logger *slog.Logger) *Handler {
	return &Handler{
		store:  s,
		quiz:   quiz,
		auth:   authSvc,
		logger: logger,
	}
}

// validator is implemented by request bodies that check themselves.
type validator interface {
	Validate() error
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError checks for common store and domain errors and writes the
// appropriate HTTP response. Returns true if an error was handled (caller
// should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}

	var verr *quiztest.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, service.ErrNoActiveSession):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &verr),
		errors.Is(err, service.ErrEmptyTest),
		errors.Is(err, usagestats.ErrInvalidScore),
		errors.Is(err, usagestats.ErrInvalidDuration),
		errors.Is(err, user.ErrUsernameRequired),
		errors.Is(err, user.ErrPasswordTooShort):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrUsernameTaken):
		respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("store error", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
