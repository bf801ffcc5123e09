package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quicktest/backend/internal/domain/quiztest"
)

// ============================================================================
// Tests
// ============================================================================

func (s *SQLiteStore) ListTests(ctx context.Context, userID string) ([]*quiztest.Test, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, user_id, name FROM tests WHERE user_id = ? ORDER BY rowid", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tests := []*quiztest.Test{}
	byID := make(map[string]*quiztest.Test)
	for rows.Next() {
		t := &quiztest.Test{Questions: []quiztest.Question{}}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name); err != nil {
			return nil, err
		}
		tests = append(tests, t)
		byID[t.ID] = t
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	qrows, err := s.db.QueryContext(ctx, `
		SELECT q.test_id, q.id, q.question, q.answers, q.correct_answers
		FROM questions q JOIN tests t ON t.id = q.test_id
		WHERE t.user_id = ?
		ORDER BY q.test_id, q.position`, userID)
	if err != nil {
		return nil, err
	}
	defer qrows.Close()

	for qrows.Next() {
		var testID string
		q, err := scanQuestion(qrows, &testID)
		if err != nil {
			return nil, err
		}
		if t, ok := byID[testID]; ok {
			t.Questions = append(t.Questions, q)
		}
	}
	return tests, qrows.Err()
}

func (s *SQLiteStore) GetTest(ctx context.Context, userID, testID string) (*quiztest.Test, error) {
	t := &quiztest.Test{Questions: []quiztest.Question{}}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, name FROM tests WHERE id = ? AND user_id = ?", testID, userID,
	).Scan(&t.ID, &t.UserID, &t.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT test_id, id, question, answers, correct_answers FROM questions WHERE test_id = ? ORDER BY position",
		testID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var owner string
		q, err := scanQuestion(rows, &owner)
		if err != nil {
			return nil, err
		}
		t.Questions = append(t.Questions, q)
	}
	return t, rows.Err()
}

func (s *SQLiteStore) CreateTest(ctx context.Context, userID, name string, questions []quiztest.Question) (*quiztest.Test, error) {
	t, err := quiztest.New(userID, name, questions)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "INSERT INTO tests (id, user_id, name) VALUES (?, ?, ?)", t.ID, userID, t.Name); err != nil {
		return nil, err
	}
	if err := insertQuestions(ctx, tx, t); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTest replaces the name and every question of an existing test.
// Questions receive fresh IDs.
func (s *SQLiteStore) UpdateTest(ctx context.Context, userID string, test *quiztest.Test) (*quiztest.Test, error) {
	updated := &quiztest.Test{
		ID:        test.ID,
		UserID:    userID,
		Name:      test.Name,
		Questions: quiztest.WithFreshIDs(test.Questions),
	}
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "UPDATE tests SET name = ? WHERE id = ? AND user_id = ?", updated.Name, updated.ID, userID)
	if err != nil {
		return nil, err
	}
	if err := rowsAffectedOrNotFound(result); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE test_id = ?", updated.ID); err != nil {
		return nil, err
	}
	if err := insertQuestions(ctx, tx, updated); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *SQLiteStore) DeleteTest(ctx context.Context, userID, testID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, "DELETE FROM tests WHERE id = ? AND user_id = ?", testID, userID)
	if err != nil {
		return err
	}
	if err := rowsAffectedOrNotFound(result); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE test_id = ?", testID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM session_snapshots WHERE user_id = ? AND test_id = ?", userID, testID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM last_sessions WHERE user_id = ? AND test_id = ?", userID, testID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) ExportTest(ctx context.Context, userID, testID string) (quiztest.Document, error) {
	t, err := s.GetTest(ctx, userID, testID)
	if err != nil {
		return quiztest.Document{}, err
	}
	return quiztest.Export(t), nil
}

// ImportTest always creates a new test; it never merges into an existing one.
func (s *SQLiteStore) ImportTest(ctx context.Context, userID string, doc quiztest.Document) (*quiztest.Test, error) {
	return s.CreateTest(ctx, userID, doc.Name, doc.ToQuestions())
}

func insertQuestions(ctx context.Context, tx *sql.Tx, t *quiztest.Test) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO questions (id, test_id, user_id, position, question, answers, correct_answers) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, q := range t.Questions {
		answersJSON, err := json.Marshal(q.Answers)
		if err != nil {
			return err
		}
		correctJSON, err := json.Marshal(q.CorrectAnswers)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, q.ID, t.ID, t.UserID, i, q.Question, string(answersJSON), string(correctJSON)); err != nil {
			return fmt.Errorf("insert question %d: %w", i, err)
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner, testID *string) (quiztest.Question, error) {
	var q quiztest.Question
	var answersJSON, correctJSON string
	if err := row.Scan(testID, &q.ID, &q.Question, &answersJSON, &correctJSON); err != nil {
		return q, err
	}
	if err := json.Unmarshal([]byte(answersJSON), &q.Answers); err != nil {
		return q, fmt.Errorf("decode answers for question %s: %w", q.ID, err)
	}
	if err := json.Unmarshal([]byte(correctJSON), &q.CorrectAnswers); err != nil {
		return q, fmt.Errorf("decode correct answers for question %s: %w", q.ID, err)
	}
	return q, nil
}
