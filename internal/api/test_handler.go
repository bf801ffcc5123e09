package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/quicktest/backend/internal/domain/quiztest"
)

// ── Request / Response types ────────────────────────────────────────────────

type QuestionPayload struct {
	ID             string   `json:"id,omitempty" example:"q1w2e3r4t5y6u7i8"`
	Question       string   `json:"question" example:"Which of these are prime?"`
	Answers        []string `json:"answers" example:"2,4,5"`
	CorrectAnswers []int    `json:"correct_answers" example:"0,2"`
}

type TestRequest struct {
	Name      string            `json:"name" example:"Number theory"`
	Questions []QuestionPayload `json:"questions"`
}

func (r *TestRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

func (r *TestRequest) questions() []quiztest.Question {
	out := make([]quiztest.Question, len(r.Questions))
	for i, q := range r.Questions {
		out[i] = quiztest.Question{
			Question:       q.Question,
			Answers:        q.Answers,
			CorrectAnswers: q.CorrectAnswers,
		}
	}
	return out
}

type TestResponse struct {
	ID        string            `json:"id" example:"a1b2c3d4e5f6g7h8"`
	Name      string            `json:"name" example:"Number theory"`
	Questions []QuestionPayload `json:"questions"`
}

func newTestResponse(t *quiztest.Test) TestResponse {
	qs := make([]QuestionPayload, len(t.Questions))
	for i, q := range t.Questions {
		qs[i] = QuestionPayload{
			ID:             q.ID,
			Question:       q.Question,
			Answers:        q.Answers,
			CorrectAnswers: q.CorrectAnswers,
		}
	}
	return TestResponse{ID: t.ID, Name: t.Name, Questions: qs}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listTests returns the caller's tests.
// @Summary      List tests
// @Tags         Tests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   TestResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tests [get]
func (h *Handler) listTests(w http.ResponseWriter, r *http.Request) {
	tests, err := h.store.ListTests(r.Context(), userID(r))
	if h.handleStoreError(w, err, "tests") {
		return
	}

	response := make([]TestResponse, len(tests))
	for i, t := range tests {
		response[i] = newTestResponse(t)
	}
	respondJSON(w, http.StatusOK, response)
}

// createTest creates a test with its questions.
// @Summary      Create a test
// @Description  Every question needs a prompt, at least two answers and at least one valid correct index.
// @Tags         Tests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      TestRequest  true  "Test to create"
// @Success      201   {object}  TestResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /tests [post]
func (h *Handler) createTest(w http.ResponseWriter, r *http.Request) {
	var req TestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	t, err := h.store.CreateTest(r.Context(), userID(r), req.Name, req.questions())
	if h.handleStoreError(w, err, "test") {
		return
	}
	respondJSON(w, http.StatusCreated, newTestResponse(t))
}

// getTest returns one test with its questions.
// @Summary      Get a test
// @Tags         Tests
// @Produce      json
// @Security     BearerAuth
// @Param        testID  path      string  true  "Test ID"
// @Success      200     {object}  TestResponse
// @Failure      404     {object}  map[string]string
// @Router       /tests/{testID} [get]
func (h *Handler) getTest(w http.ResponseWriter, r *http.Request) {
	t, err := h.store.GetTest(r.Context(), userID(r), r.PathValue("testID"))
	if h.handleStoreError(w, err, "test") {
		return
	}
	respondJSON(w, http.StatusOK, newTestResponse(t))
}

// updateTest renames a test and replaces all of its questions.
// @Summary      Update a test
// @Description  The question list is replaced wholesale; question IDs are regenerated.
// @Tags         Tests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        testID  path      string       true  "Test ID"
// @Param        body    body      TestRequest  true  "New name and questions"
// @Success      200     {object}  TestResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /tests/{testID} [put]
func (h *Handler) updateTest(w http.ResponseWriter, r *http.Request) {
	var req TestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	testID := r.PathValue("testID")
	t, err := h.store.UpdateTest(r.Context(), userID(r), &quiztest.Test{
		ID:        testID,
		Name:      req.Name,
		Questions: req.questions(),
	})
	if h.handleStoreError(w, err, "test") {
		return
	}
	h.quiz.CloseTest(r.Context(), userID(r), testID)
	respondJSON(w, http.StatusOK, newTestResponse(t))
}

// deleteTest removes a test, its questions and any saved session for it.
// @Summary      Delete a test
// @Tags         Tests
// @Security     BearerAuth
// @Param        testID  path  string  true  "Test ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /tests/{testID} [delete]
func (h *Handler) deleteTest(w http.ResponseWriter, r *http.Request) {
	testID := r.PathValue("testID")
	// Closed first so the attempt's time is reported before the delete
	// drops its snapshot.
	h.quiz.CloseTest(r.Context(), userID(r), testID)
	err := h.store.DeleteTest(r.Context(), userID(r), testID)
	if h.handleStoreError(w, err, "test") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
