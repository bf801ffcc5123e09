package api

import (
	"errors"
	"net/http"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type StatsResponse struct {
	CompletedTests int     `json:"completed_tests" example:"4"`
	TotalScore     float64 `json:"total_score" example:"310"`
	AverageScore   float64 `json:"average_score" example:"77.5"`
}

type RecordCompletedRequest struct {
	Score *float64 `json:"score" example:"85"`
}

func (r *RecordCompletedRequest) Validate() error {
	if r.Score == nil {
		return errors.New("score is required")
	}
	return nil
}

type WeeklyTimeResponse struct {
	WeekStart    string `json:"week_start" example:"2026-03-01T00:00:00Z"`
	TotalSeconds int    `json:"total_seconds" example:"5400"`
}

type RecordTimeRequest struct {
	Seconds *int `json:"seconds" example:"120"`
}

func (r *RecordTimeRequest) Validate() error {
	if r.Seconds == nil {
		return errors.New("seconds is required")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getStats returns completed-test count and average score.
// @Summary      Get usage stats
// @Tags         Stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  StatsResponse
// @Router       /stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.store.GetUserStats(r.Context(), userID(r))
	if h.handleStoreError(w, err, "stats") {
		return
	}
	respondJSON(w, http.StatusOK, StatsResponse{
		CompletedTests: s.CompletedTests,
		TotalScore:     s.TotalScore,
		AverageScore:   s.AverageScore,
	})
}

// recordCompleted folds a score into the running average.
// @Summary      Record a completed test
// @Tags         Stats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      RecordCompletedRequest  true  "Score between 0 and 100"
// @Success      200   {object}  StatsResponse
// @Failure      400   {object}  map[string]string
// @Router       /stats/completed [post]
func (h *Handler) recordCompleted(w http.ResponseWriter, r *http.Request) {
	var req RecordCompletedRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	s, err := h.store.RecordCompletedTest(r.Context(), userID(r), *req.Score)
	if h.handleStoreError(w, err, "stats") {
		return
	}
	respondJSON(w, http.StatusOK, StatsResponse{
		CompletedTests: s.CompletedTests,
		TotalScore:     s.TotalScore,
		AverageScore:   s.AverageScore,
	})
}

// getWeeklyTime returns time on task for the current week.
// @Summary      Get this week's time
// @Tags         Stats
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  WeeklyTimeResponse
// @Router       /stats/weekly-time [get]
func (h *Handler) getWeeklyTime(w http.ResponseWriter, r *http.Request) {
	wt, err := h.store.GetWeeklyTime(r.Context(), userID(r), time.Now())
	if h.handleStoreError(w, err, "weekly time") {
		return
	}
	respondJSON(w, http.StatusOK, WeeklyTimeResponse{
		WeekStart:    wt.WeekStart.Format(time.RFC3339),
		TotalSeconds: wt.TotalSeconds,
	})
}

// recordTime adds seconds to the current week's bucket.
// @Summary      Record time spent
// @Tags         Stats
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      RecordTimeRequest  true  "Seconds spent, not negative"
// @Success      200   {object}  WeeklyTimeResponse
// @Failure      400   {object}  map[string]string
// @Router       /stats/weekly-time [post]
func (h *Handler) recordTime(w http.ResponseWriter, r *http.Request) {
	var req RecordTimeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	wt, err := h.store.RecordTimeSpent(r.Context(), userID(r), *req.Seconds, time.Now())
	if h.handleStoreError(w, err, "weekly time") {
		return
	}
	respondJSON(w, http.StatusOK, WeeklyTimeResponse{
		WeekStart:    wt.WeekStart.Format(time.RFC3339),
		TotalSeconds: wt.TotalSeconds,
	})
}
