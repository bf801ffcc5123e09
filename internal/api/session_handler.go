package api

import (
	"errors"
	"net/http"

	"github.com/quicktest/backend/internal/domain/quizsession"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartSessionRequest struct {
	TestID string `json:"test_id" example:"a1b2c3d4e5f6g7h8"`
	// Fresh ignores any saved progress for the test.
	Fresh bool `json:"fresh" example:"false"`
}

func (r *StartSessionRequest) Validate() error {
	if r.TestID == "" {
		return errors.New("test_id is required")
	}
	return nil
}

type SelectAnswerRequest struct {
	Index *int `json:"index" example:"1"`
}

func (r *SelectAnswerRequest) Validate() error {
	if r.Index == nil {
		return errors.New("index is required")
	}
	return nil
}

// CurrentQuestion is the question on screen. CorrectAnswers is only set
// once the answer has been checked.
type CurrentQuestion struct {
	ID             string   `json:"id" example:"q1w2e3r4t5y6u7i8"`
	Question       string   `json:"question" example:"Which of these are prime?"`
	Answers        []string `json:"answers" example:"2,4,5"`
	Repetitions    int      `json:"repetitions" example:"2"`
	CorrectAnswers []int    `json:"correct_answers,omitempty" example:"0,2"`
}

type SessionResponse struct {
	TestID         string           `json:"test_id" example:"a1b2c3d4e5f6g7h8"`
	TestName       string           `json:"test_name,omitempty" example:"Number theory"`
	Question       *CurrentQuestion `json:"question"`
	Selected       []int            `json:"selected"`
	Checked        bool             `json:"checked"`
	Outcome        string           `json:"outcome" example:"unchecked"`
	Remaining      int              `json:"remaining" example:"7"`
	Mastered       int              `json:"mastered" example:"3"`
	Correct        int              `json:"correct" example:"4"`
	Incorrect      int              `json:"incorrect" example:"1"`
	ElapsedSeconds int              `json:"elapsed_seconds" example:"95"`
}

type CompletionResponse struct {
	Score          float64 `json:"score" example:"80"`
	Correct        int     `json:"correct" example:"8"`
	Incorrect      int     `json:"incorrect" example:"2"`
	Mastered       int     `json:"mastered" example:"8"`
	ElapsedSeconds int     `json:"elapsed_seconds" example:"312"`
}

// AdvanceResponse carries either the next question or, when the pool is
// exhausted, the completion summary.
type AdvanceResponse struct {
	Completed  bool                `json:"completed"`
	Session    *SessionResponse    `json:"session,omitempty"`
	Completion *CompletionResponse `json:"completion,omitempty"`
}

func newSessionResponse(st *quizsession.State) *SessionResponse {
	resp := &SessionResponse{
		TestID:         st.TestID,
		Selected:       st.Selected,
		Checked:        st.Checked,
		Outcome:        string(st.Outcome),
		Remaining:      len(st.Pool),
		Mastered:       st.Mastered,
		Correct:        st.Correct,
		Incorrect:      st.Incorrect,
		ElapsedSeconds: st.ElapsedSeconds,
	}
	if resp.Selected == nil {
		resp.Selected = []int{}
	}
	if cur := st.Current(); cur != nil {
		resp.Question = &CurrentQuestion{
			ID:          cur.ID,
			Question:    cur.Question.Question,
			Answers:     cur.Answers,
			Repetitions: cur.Repetitions,
		}
		if st.Checked {
			resp.Question.CorrectAnswers = cur.CorrectAnswers
		}
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startSession opens a test for practice.
// @Summary      Start a quiz session
// @Description  Resumes saved progress for the test unless fresh is set. Any other open session is suspended.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      StartSessionRequest  true  "Test to practice"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string  "test has no questions"
// @Failure      404   {object}  map[string]string
// @Router       /quiz/sessions [post]
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	st, err := h.quiz.Start(r.Context(), userID(r), req.TestID, req.Fresh)
	if h.handleStoreError(w, err, "test") {
		return
	}
	respondJSON(w, http.StatusCreated, newSessionResponse(st))
}

// resumeSession reopens the test the caller last worked on.
// @Summary      Resume the last session
// @Tags         Quiz
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string  "nothing to resume"
// @Router       /quiz/session/resume [post]
func (h *Handler) resumeSession(w http.ResponseWriter, r *http.Request) {
	st, err := h.quiz.Resume(r.Context(), userID(r))
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, newSessionResponse(st))
}

// getSession returns the open session.
// @Summary      Get the open session
// @Tags         Quiz
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Router       /quiz/session [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	st, test, err := h.quiz.View(userID(r))
	if h.handleStoreError(w, err, "session") {
		return
	}
	resp := newSessionResponse(st)
	resp.TestName = test.Name
	respondJSON(w, http.StatusOK, resp)
}

// selectAnswer toggles an answer. Ignored after the answer is checked or
// when the index is out of range.
// @Summary      Toggle an answer
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      SelectAnswerRequest  true  "Answer index"
// @Success      200   {object}  SessionResponse
// @Failure      404   {object}  map[string]string
// @Router       /quiz/session/select [post]
func (h *Handler) selectAnswer(w http.ResponseWriter, r *http.Request) {
	var req SelectAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	st, err := h.quiz.SelectAnswer(r.Context(), userID(r), *req.Index)
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, newSessionResponse(st))
}

// checkAnswer grades the current selection.
// @Summary      Check the answer
// @Tags         Quiz
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Router       /quiz/session/check [post]
func (h *Handler) checkAnswer(w http.ResponseWriter, r *http.Request) {
	st, err := h.quiz.CheckAnswer(r.Context(), userID(r))
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, newSessionResponse(st))
}

// advance moves to the next question or finishes the session.
// @Summary      Next question
// @Tags         Quiz
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  AdvanceResponse
// @Failure      404  {object}  map[string]string
// @Router       /quiz/session/advance [post]
func (h *Handler) advance(w http.ResponseWriter, r *http.Request) {
	st, c, err := h.quiz.Advance(r.Context(), userID(r))
	if h.handleStoreError(w, err, "session") {
		return
	}

	if c != nil {
		respondJSON(w, http.StatusOK, AdvanceResponse{
			Completed: true,
			Completion: &CompletionResponse{
				Score:          c.Score,
				Correct:        c.Correct,
				Incorrect:      c.Incorrect,
				Mastered:       c.Mastered,
				ElapsedSeconds: c.ElapsedSeconds,
			},
		})
		return
	}
	respondJSON(w, http.StatusOK, AdvanceResponse{Session: newSessionResponse(st)})
}

// resetSession restarts the open test from scratch.
// @Summary      Reset the session
// @Tags         Quiz
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Router       /quiz/session/reset [post]
func (h *Handler) resetSession(w http.ResponseWriter, r *http.Request) {
	st, err := h.quiz.Reset(r.Context(), userID(r))
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, newSessionResponse(st))
}

// abandonSession leaves the open test. Time spent is still recorded.
// @Summary      Abandon the session
// @Tags         Quiz
// @Security     BearerAuth
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /quiz/session [delete]
func (h *Handler) abandonSession(w http.ResponseWriter, r *http.Request) {
	err := h.quiz.Abandon(r.Context(), userID(r))
	if h.handleStoreError(w, err, "session") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
