package quiztest

import (
	"fmt"
	"strings"

	"github.com/quicktest/backend/internal/id"
)

// Question is a prompt with at least two answer options and one or more
// correct option indices.
type Question struct {
	ID             string   `json:"id"`
	Question       string   `json:"question"`
	Answers        []string `json:"answers"`
	CorrectAnswers []int    `json:"correctAnswers"`
}

// Test is a named, user-owned collection of questions.
type Test struct {
	ID        string
	UserID    string
	Name      string
	Questions []Question
}

// ValidationError reports malformed test input. Field names the offending
// part, e.g. "name" or "questions[2].answers".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// New builds a test with fresh IDs for the test and each question.
func New(userID, name string, questions []Question) (*Test, error) {
	t := &Test{
		ID:        id.GenerateID(),
		UserID:    userID,
		Name:      name,
		Questions: WithFreshIDs(questions),
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// WithFreshIDs copies questions, assigning each a new ID.
func WithFreshIDs(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = Question{
			ID:             id.GenerateID(),
			Question:       q.Question,
			Answers:        append([]string(nil), q.Answers...),
			CorrectAnswers: append([]int(nil), q.CorrectAnswers...),
		}
	}
	return out
}

func (t *Test) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return &ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	for i, q := range t.Questions {
		if err := q.Validate(); err != nil {
			ve := err.(*ValidationError)
			ve.Field = fmt.Sprintf("questions[%d].%s", i, ve.Field)
			return ve
		}
	}
	return nil
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return &ValidationError{Field: "question", Reason: "cannot be empty"}
	}
	if len(q.Answers) < 2 {
		return &ValidationError{Field: "answers", Reason: "at least two answers are required"}
	}
	if len(q.CorrectAnswers) == 0 {
		return &ValidationError{Field: "correctAnswers", Reason: "at least one correct answer is required"}
	}
	seen := make(map[int]bool, len(q.CorrectAnswers))
	for _, idx := range q.CorrectAnswers {
		if idx < 0 || idx >= len(q.Answers) {
			return &ValidationError{Field: "correctAnswers", Reason: fmt.Sprintf("index %d out of range", idx)}
		}
		if seen[idx] {
			return &ValidationError{Field: "correctAnswers", Reason: fmt.Sprintf("duplicate index %d", idx)}
		}
		seen[idx] = true
	}
	return nil
}
