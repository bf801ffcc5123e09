// internal/service/quiz.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/quicktest/backend/internal/domain/quizsession"
	"github.com/quicktest/backend/internal/domain/quiztest"
	"github.com/quicktest/backend/internal/store"
)

var (
	ErrNoActiveSession = errors.New("no active quiz session")
	ErrEmptyTest       = errors.New("test has no questions")
)

type QuizConfig struct {
	// IdleTimeout is how long a session may go untouched before
	// SuspendIdle parks it. Zero disables idle suspension.
	IdleTimeout time.Duration

	NewRand   func() *rand.Rand         // defaults to a time-seeded source
	NewTicker func() quizsession.Ticker // defaults to quizsession.SecondTicker
	Now       func() time.Time          // defaults to time.Now
}

// QuizService hosts at most one live quiz session per user. Sessions that
// go idle are suspended to their snapshot and come back through Resume.
type QuizService struct {
	tests     store.TestStore
	snapshots quizsession.SnapshotStore
	sink      quizsession.Sink
	logger    *slog.Logger
	cfg       QuizConfig

	mu       sync.Mutex
	sessions map[string]*quizsession.Session // userID → session
}

func NewQuizService(tests store.TestStore, snapshots quizsession.SnapshotStore, sink quizsession.Sink, logger *slog.Logger, cfg QuizConfig) *QuizService {
	if cfg.NewRand == nil {
		cfg.NewRand = func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) }
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &QuizService{
		tests:     tests,
		snapshots: snapshots,
		sink:      sink,
		logger:    logger,
		cfg:       cfg,
		sessions:  make(map[string]*quizsession.Session),
	}
}

// Start opens testID for userID. Unless fresh is set, a saved snapshot for
// the test is restored. Any other live session of the user is suspended.
func (qs *QuizService) Start(ctx context.Context, userID, testID string, fresh bool) (*quizsession.State, error) {
	test, err := qs.tests.GetTest(ctx, userID, testID)
	if err != nil {
		return nil, err
	}
	if len(test.Questions) == 0 {
		return nil, ErrEmptyTest
	}

	qs.mu.Lock()
	defer qs.mu.Unlock()

	if cur, ok := qs.sessions[userID]; ok {
		sameTest := cur.Test().ID == testID && cur.Active()
		switch {
		case sameTest && !fresh:
			return cur.State(), nil
		case sameTest:
			// Restarting reports the time spent on the attempt being dropped.
			cur.Abandon(ctx)
		default:
			cur.Suspend(ctx)
		}
		delete(qs.sessions, userID)
	}

	sess := qs.newSession(userID, test)
	var st *quizsession.State
	if fresh {
		if err := qs.discardSnapshot(ctx, userID, testID); err != nil {
			return nil, err
		}
		st = sess.Start(ctx, nil)
	} else {
		st, err = sess.Resume(ctx)
		if err != nil {
			return nil, err
		}
	}
	qs.sessions[userID] = sess

	qs.logger.Info("quiz session started",
		"user_id", userID,
		"test_id", testID,
		"fresh", fresh,
		"pool", len(st.Pool),
	)
	return st, nil
}

// Resume returns the live session, or reopens the test the user last
// worked on from its snapshot.
func (qs *QuizService) Resume(ctx context.Context, userID string) (*quizsession.State, error) {
	if sess, err := qs.live(userID); err == nil {
		return sess.State(), nil
	}

	testID, err := qs.snapshots.LastTest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if testID == "" {
		return nil, ErrNoActiveSession
	}
	// Nothing to resume once the last attempt completed or was abandoned.
	// A corrupt snapshot still goes through Start, which replaces it.
	snap, err := qs.snapshots.LoadSnapshot(ctx, userID, testID)
	if err != nil && !errors.Is(err, quizsession.ErrCorruptSnapshot) {
		return nil, err
	}
	if snap == nil && err == nil {
		return nil, ErrNoActiveSession
	}
	st, err := qs.Start(ctx, userID, testID, false)
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, ErrEmptyTest) {
		return nil, ErrNoActiveSession
	}
	return st, err
}

// View returns the live session state along with the test it belongs to.
func (qs *QuizService) View(userID string) (*quizsession.State, *quiztest.Test, error) {
	sess, err := qs.live(userID)
	if err != nil {
		return nil, nil, err
	}
	st := sess.State()
	if st == nil {
		return nil, nil, ErrNoActiveSession
	}
	return st, sess.Test(), nil
}

func (qs *QuizService) SelectAnswer(ctx context.Context, userID string, index int) (*quizsession.State, error) {
	sess, err := qs.live(userID)
	if err != nil {
		return nil, err
	}
	return orInactive(sess.SelectAnswer(ctx, index))
}

func (qs *QuizService) CheckAnswer(ctx context.Context, userID string) (*quizsession.State, error) {
	sess, err := qs.live(userID)
	if err != nil {
		return nil, err
	}
	return orInactive(sess.CheckAnswer(ctx))
}

// Advance moves to the next question. On completion the state is nil and
// the session is released.
func (qs *QuizService) Advance(ctx context.Context, userID string) (*quizsession.State, *quizsession.Completion, error) {
	sess, err := qs.live(userID)
	if err != nil {
		return nil, nil, err
	}
	st, c := sess.Advance(ctx)
	if c != nil {
		qs.release(userID, sess)
		qs.logger.Info("quiz session completed",
			"user_id", userID,
			"test_id", sess.Test().ID,
			"score", c.Score,
			"elapsed_seconds", c.ElapsedSeconds,
		)
		return nil, c, nil
	}
	if st == nil {
		return nil, nil, ErrNoActiveSession
	}
	return st, nil, nil
}

func (qs *QuizService) Reset(ctx context.Context, userID string) (*quizsession.State, error) {
	sess, err := qs.live(userID)
	if err != nil {
		return nil, err
	}
	return sess.Reset(ctx), nil
}

func (qs *QuizService) Abandon(ctx context.Context, userID string) error {
	sess, err := qs.live(userID)
	if err != nil {
		return err
	}
	sess.Abandon(ctx)
	qs.release(userID, sess)
	return nil
}

// CloseTest ends the user's attempt on testID, live or suspended. It is
// called when the test is edited or deleted so nothing resumes on stale
// questions.
func (qs *QuizService) CloseTest(ctx context.Context, userID, testID string) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	if sess, ok := qs.sessions[userID]; ok && sess.Test().ID == testID {
		sess.Abandon(ctx)
		delete(qs.sessions, userID)
	}
	if err := qs.discardSnapshot(ctx, userID, testID); err != nil {
		qs.logger.Error("failed to discard snapshot", "user_id", userID, "test_id", testID, "error", err)
	}
}

// SuspendIdle parks every session untouched since IdleTimeout and reports
// how many were suspended.
func (qs *QuizService) SuspendIdle(ctx context.Context) int {
	if qs.cfg.IdleTimeout <= 0 {
		return 0
	}
	cutoff := qs.cfg.Now().Add(-qs.cfg.IdleTimeout)

	qs.mu.Lock()
	defer qs.mu.Unlock()

	n := 0
	for userID, sess := range qs.sessions {
		if sess.Active() && !sess.IdleSince().Before(cutoff) {
			continue
		}
		sess.Suspend(ctx)
		delete(qs.sessions, userID)
		n++
	}
	if n > 0 {
		qs.logger.Info("suspended idle quiz sessions", "count", n)
	}
	return n
}

// Shutdown suspends every live session so each can be resumed after a
// restart.
func (qs *QuizService) Shutdown(ctx context.Context) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	for userID, sess := range qs.sessions {
		sess.Suspend(ctx)
		delete(qs.sessions, userID)
	}
}

func (qs *QuizService) live(userID string) (*quizsession.Session, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()

	sess, ok := qs.sessions[userID]
	if !ok || !sess.Active() {
		return nil, ErrNoActiveSession
	}
	return sess, nil
}

// discardSnapshot clears a saved attempt that no live session owns. Its
// elapsed time is reported first, since suspension never reports it.
func (qs *QuizService) discardSnapshot(ctx context.Context, userID, testID string) error {
	snap, err := qs.snapshots.LoadSnapshot(ctx, userID, testID)
	if err != nil && !errors.Is(err, quizsession.ErrCorruptSnapshot) {
		return err
	}
	if snap != nil && snap.ElapsedSeconds > 0 && qs.sink != nil {
		qs.sink.Publish(quizsession.Event{
			Kind:           quizsession.EventEnded,
			UserID:         userID,
			TestID:         testID,
			ElapsedSeconds: snap.ElapsedSeconds,
		})
	}
	return qs.snapshots.ClearSnapshot(ctx, userID, testID)
}

// release drops sess from the map unless it has already been replaced.
func (qs *QuizService) release(userID string, sess *quizsession.Session) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	if qs.sessions[userID] == sess {
		delete(qs.sessions, userID)
	}
}

func (qs *QuizService) newSession(userID string, test *quiztest.Test) *quizsession.Session {
	return quizsession.New(userID, test, quizsession.Options{
		Snapshots: qs.snapshots,
		Sink:      qs.sink,
		Rand:      qs.cfg.NewRand(),
		Logger:    qs.logger.With("user_id", userID, "test_id", test.ID),
		NewTicker: qs.cfg.NewTicker,
		Now:       qs.cfg.Now,
	})
}

func orInactive(st *quizsession.State) (*quizsession.State, error) {
	if st == nil {
		return nil, ErrNoActiveSession
	}
	return st, nil
}
