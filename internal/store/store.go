package store

import (
	"context"
	"errors"
	"time"

	"github.com/quicktest/backend/internal/domain/quizsession"
	"github.com/quicktest/backend/internal/domain/quiztest"
	"github.com/quicktest/backend/internal/domain/usagestats"
	"github.com/quicktest/backend/internal/domain/user"
)

var (
	ErrNotFound = errors.New("not found")
)

// TestStore persists question sets. Every method is scoped to userID;
// tests owned by someone else behave as missing.
type TestStore interface {
	ListTests(ctx context.Context, userID string) ([]*quiztest.Test, error)
	GetTest(ctx context.Context, userID, testID string) (*quiztest.Test, error)
	CreateTest(ctx context.Context, userID, name string, questions []quiztest.Question) (*quiztest.Test, error)
	UpdateTest(ctx context.Context, userID string, test *quiztest.Test) (*quiztest.Test, error)
	DeleteTest(ctx context.Context, userID, testID string) error
	ExportTest(ctx context.Context, userID, testID string) (quiztest.Document, error)
	ImportTest(ctx context.Context, userID string, doc quiztest.Document) (*quiztest.Test, error)
}

// StatsStore records completed tests and weekly time on task.
type StatsStore interface {
	GetUserStats(ctx context.Context, userID string) (usagestats.Stats, error)
	RecordCompletedTest(ctx context.Context, userID string, score float64) (usagestats.Stats, error)
	GetWeeklyTime(ctx context.Context, userID string, at time.Time) (usagestats.WeeklyTime, error)
	RecordTimeSpent(ctx context.Context, userID string, seconds int, at time.Time) (usagestats.WeeklyTime, error)
}

type UserStore interface {
	CreateUser(ctx context.Context, u *user.User) error
	GetUserByUsername(ctx context.Context, username string) (*user.User, error)
	GetUserByID(ctx context.Context, id string) (*user.User, error)
}

type Store interface {
	TestStore
	StatsStore
	UserStore
	quizsession.SnapshotStore
}

var _ Store = (*SQLiteStore)(nil)
