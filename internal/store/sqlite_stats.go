package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/quicktest/backend/internal/domain/usagestats"
)

// ============================================================================
// User stats
// ============================================================================

// GetUserStats returns zero stats for a user who has not completed a test.
func (s *SQLiteStore) GetUserStats(ctx context.Context, userID string) (usagestats.Stats, error) {
	return getUserStats(ctx, s.db, userID)
}

func (s *SQLiteStore) RecordCompletedTest(ctx context.Context, userID string, score float64) (usagestats.Stats, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return usagestats.Stats{}, err
	}
	defer tx.Rollback()

	current, err := getUserStats(ctx, tx, userID)
	if err != nil {
		return usagestats.Stats{}, err
	}
	next, err := current.Record(score)
	if err != nil {
		return usagestats.Stats{}, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_stats (user_id, completed_tests, total_score, average_score)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			completed_tests = excluded.completed_tests,
			total_score = excluded.total_score,
			average_score = excluded.average_score`,
		userID, next.CompletedTests, next.TotalScore, next.AverageScore,
	)
	if err != nil {
		return usagestats.Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return usagestats.Stats{}, err
	}
	return next, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getUserStats(ctx context.Context, q queryRower, userID string) (usagestats.Stats, error) {
	stats := usagestats.Stats{UserID: userID}
	err := q.QueryRowContext(ctx,
		"SELECT completed_tests, total_score, average_score FROM user_stats WHERE user_id = ?", userID,
	).Scan(&stats.CompletedTests, &stats.TotalScore, &stats.AverageScore)
	if errors.Is(err, sql.ErrNoRows) {
		return stats, nil
	}
	return stats, err
}

// ============================================================================
// Weekly time
// ============================================================================

func (s *SQLiteStore) GetWeeklyTime(ctx context.Context, userID string, at time.Time) (usagestats.WeeklyTime, error) {
	week := usagestats.WeekStart(at, s.weekStart)
	wt := usagestats.WeeklyTime{UserID: userID, WeekStart: week}

	err := s.db.QueryRowContext(ctx,
		"SELECT total_seconds FROM weekly_time WHERE user_id = ? AND week_start = ?", userID, week.Unix(),
	).Scan(&wt.TotalSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return wt, nil
	}
	return wt, err
}

// RecordTimeSpent adds seconds to the bucket of the week containing at and
// returns the bucket's new total.
func (s *SQLiteStore) RecordTimeSpent(ctx context.Context, userID string, seconds int, at time.Time) (usagestats.WeeklyTime, error) {
	if seconds < 0 {
		return usagestats.WeeklyTime{}, usagestats.ErrInvalidDuration
	}
	week := usagestats.WeekStart(at, s.weekStart)
	wt := usagestats.WeeklyTime{UserID: userID, WeekStart: week}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO weekly_time (user_id, week_start, total_seconds)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, week_start) DO UPDATE SET
			total_seconds = total_seconds + excluded.total_seconds
		RETURNING total_seconds`,
		userID, week.Unix(), seconds,
	).Scan(&wt.TotalSeconds)
	if err != nil {
		return usagestats.WeeklyTime{}, err
	}
	return wt, nil
}
