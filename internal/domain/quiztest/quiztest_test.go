package quiztest_test

import (
	"errors"
	"testing"

	"github.com/quicktest/backend/internal/domain/quiztest"
)

func validQuestion() quiztest.Question {
	return quiztest.Question{
		Question:       "Which are prime?",
		Answers:        []string{"2", "4", "5"},
		CorrectAnswers: []int{0, 2},
	}
}

func TestNew_AssignsIDs(t *testing.T) {
	test, err := quiztest.New("user-1", "Maths", []quiztest.Question{validQuestion(), validQuestion()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if test.ID == "" {
		t.Error("expected non-empty test ID")
	}
	if test.UserID != "user-1" {
		t.Errorf("expected owner %q, got %q", "user-1", test.UserID)
	}
	if test.Questions[0].ID == "" || test.Questions[0].ID == test.Questions[1].ID {
		t.Error("expected distinct non-empty question IDs")
	}
}

func TestNew_EmptyName(t *testing.T) {
	_, err := quiztest.New("user-1", "  ", nil)

	var ve *quiztest.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "name" {
		t.Errorf("expected field %q, got %q", "name", ve.Field)
	}
}

func TestValidate_QuestionRules(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(q *quiztest.Question)
		field  string
	}{
		{"empty prompt", func(q *quiztest.Question) { q.Question = "" }, "questions[0].question"},
		{"one answer", func(q *quiztest.Question) { q.Answers = []string{"only"}; q.CorrectAnswers = []int{0} }, "questions[0].answers"},
		{"no correct answers", func(q *quiztest.Question) { q.CorrectAnswers = nil }, "questions[0].correctAnswers"},
		{"index out of range", func(q *quiztest.Question) { q.CorrectAnswers = []int{3} }, "questions[0].correctAnswers"},
		{"negative index", func(q *quiztest.Question) { q.CorrectAnswers = []int{-1} }, "questions[0].correctAnswers"},
		{"duplicate index", func(q *quiztest.Question) { q.CorrectAnswers = []int{1, 1} }, "questions[0].correctAnswers"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q := validQuestion()
			c.mutate(&q)
			test := &quiztest.Test{Name: "T", Questions: []quiztest.Question{q}}

			var ve *quiztest.ValidationError
			if err := test.Validate(); !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != c.field {
				t.Errorf("expected field %q, got %q", c.field, ve.Field)
			}
		})
	}
}

func TestExport_DropsIdentifiers(t *testing.T) {
	test, err := quiztest.New("user-1", "Maths", []quiztest.Question{validQuestion()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := quiztest.Export(test)

	if doc.Name != "Maths" {
		t.Errorf("expected name %q, got %q", "Maths", doc.Name)
	}
	if len(doc.Questions) != 1 || doc.Questions[0].Question != "Which are prime?" {
		t.Fatalf("unexpected questions: %+v", doc.Questions)
	}

	back := doc.ToQuestions()
	if back[0].ID != "" {
		t.Errorf("expected imported question without ID, got %q", back[0].ID)
	}
}
