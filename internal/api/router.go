// internal/api/router.go
package api

import (
	"net/http"

	"github.com/quicktest/backend/internal/auth"
)

func RegisterRoutes(mux *http.ServeMux, h *Handler, loginLimiter *auth.Limiter) {
	authed := RequireAuth(h.auth)
	limited := RateLimit(loginLimiter)

	// Auth
	mux.HandleFunc("POST /auth/register", limited(h.register))
	mux.HandleFunc("POST /auth/login", limited(h.login))
	mux.HandleFunc("POST /auth/logout", authed(h.logout))

	// Tests
	mux.HandleFunc("GET /tests", authed(h.listTests))
	mux.HandleFunc("POST /tests", authed(h.createTest))
	mux.HandleFunc("POST /tests/import", authed(h.importTest))
	mux.HandleFunc("GET /tests/{testID}", authed(h.getTest))
	mux.HandleFunc("PUT /tests/{testID}", authed(h.updateTest))
	mux.HandleFunc("DELETE /tests/{testID}", authed(h.deleteTest))
	mux.HandleFunc("GET /tests/{testID}/export", authed(h.exportTest))

	// Stats
	mux.HandleFunc("GET /stats", authed(h.getStats))
	mux.HandleFunc("POST /stats/completed", authed(h.recordCompleted))
	mux.HandleFunc("GET /stats/weekly-time", authed(h.getWeeklyTime))
	mux.HandleFunc("POST /stats/weekly-time", authed(h.recordTime))

	// Quiz sessions
	mux.HandleFunc("POST /quiz/sessions", authed(h.startSession))
	mux.HandleFunc("POST /quiz/session/resume", authed(h.resumeSession))
	mux.HandleFunc("GET /quiz/session", authed(h.getSession))
	mux.HandleFunc("POST /quiz/session/select", authed(h.selectAnswer))
	mux.HandleFunc("POST /quiz/session/check", authed(h.checkAnswer))
	mux.HandleFunc("POST /quiz/session/advance", authed(h.advance))
	mux.HandleFunc("POST /quiz/session/reset", authed(h.resetSession))
	mux.HandleFunc("DELETE /quiz/session", authed(h.abandonSession))
}
