package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/quicktest/backend/internal/auth"
)

// ── Request / Response types ────────────────────────────────────────────────

type CredentialsRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"correct-horse"`
}

func (r *CredentialsRequest) Validate() error {
	if r.Username == "" {
		return errors.New("username is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type UserResponse struct {
	ID       string `json:"id" example:"u1v2w3x4y5z6a7b8"`
	Username string `json:"username" example:"alice"`
}

type TokenResponse struct {
	Token     string `json:"token" example:"0b5e3f9c-2d4a-4c1e-9f7a-8e6b5d4c3a21"`
	UserID    string `json:"user_id" example:"u1v2w3x4y5z6a7b8"`
	Username  string `json:"username" example:"alice"`
	ExpiresAt string `json:"expires_at" example:"2026-03-04T10:00:00Z"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// register creates an account.
// @Summary      Register
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      CredentialsRequest  true  "Username and password (6+ characters)"
// @Success      201   {object}  UserResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "username taken"
// @Router       /auth/register [post]
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.auth.Register(r.Context(), req.Username, req.Password)
	if h.handleStoreError(w, err, "user") {
		return
	}
	respondJSON(w, http.StatusCreated, UserResponse{ID: u.ID, Username: u.Username})
}

// login exchanges credentials for a bearer token.
// @Summary      Log in
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      CredentialsRequest  true  "Credentials"
// @Success      200   {object}  TokenResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sess, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if h.handleStoreError(w, err, "user") {
		return
	}

	respondJSON(w, http.StatusOK, TokenResponse{
		Token:     sess.Token,
		UserID:    sess.UserID,
		Username:  sess.Username,
		ExpiresAt: sess.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// logout revokes the caller's token.
// @Summary      Log out
// @Tags         Auth
// @Security     BearerAuth
// @Success      204
// @Router       /auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.auth.Logout(bearerToken(r))
	w.WriteHeader(http.StatusNoContent)
}
