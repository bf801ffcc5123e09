package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/quicktest/backend/internal/domain/quizsession"
)

// ============================================================================
// Session snapshots
// ============================================================================

// LoadSnapshot returns nil, nil when no snapshot exists and wraps
// quizsession.ErrCorruptSnapshot when the stored data cannot be used.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context, userID, testID string) (*quizsession.State, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM session_snapshots WHERE user_id = ? AND test_id = ?", userID, testID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return quizsession.DecodeState([]byte(data))
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, userID, testID string, st *quizsession.State) error {
	data, err := quizsession.EncodeState(st)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO session_snapshots (user_id, test_id, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id, test_id) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`,
		userID, testID, string(data), time.Now().Unix(),
	)
	return err
}

func (s *SQLiteStore) ClearSnapshot(ctx context.Context, userID, testID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM session_snapshots WHERE user_id = ? AND test_id = ?", userID, testID)
	return err
}

func (s *SQLiteStore) SaveLastTest(ctx context.Context, userID, testID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO last_sessions (user_id, test_id) VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET test_id = excluded.test_id`,
		userID, testID,
	)
	return err
}

func (s *SQLiteStore) LastTest(ctx context.Context, userID string) (string, error) {
	var testID string
	err := s.db.QueryRowContext(ctx, "SELECT test_id FROM last_sessions WHERE user_id = ?", userID).Scan(&testID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return testID, err
}
