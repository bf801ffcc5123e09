package quizsession

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/quicktest/backend/internal/domain/quiztest"
)

// EventKind tells a Sink why a session stopped.
type EventKind string

const (
	// EventCompleted fires when the pool empties. It carries a score.
	EventCompleted EventKind = "completed"
	// EventEnded fires on reset or abandon. Only elapsed time is meaningful.
	EventEnded EventKind = "ended"
)

type Event struct {
	Kind           EventKind
	UserID         string
	TestID         string
	Score          float64
	ElapsedSeconds int
}

// Sink receives session events. Publish must not block on I/O.
type Sink interface {
	Publish(Event)
}

// Completion describes a finished session.
type Completion struct {
	Score          float64
	Correct        int
	Incorrect      int
	Mastered       int
	ElapsedSeconds int
}

// Ticker abstracts time.Ticker so tests can drive the clock by hand.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// SecondTicker fires once per second.
func SecondTicker() Ticker {
	return timeTicker{time.NewTicker(time.Second)}
}

type Options struct {
	Snapshots SnapshotStore
	Sink      Sink
	Rand      *rand.Rand
	Logger    *slog.Logger
	NewTicker func() Ticker    // defaults to SecondTicker
	Now       func() time.Time // defaults to time.Now
}

// Session drives one user through one test. All methods are safe for
// concurrent use; the elapsed-time clock runs on its own goroutine.
type Session struct {
	userID string
	test   *quiztest.Test

	snapshots SnapshotStore
	sink      Sink
	rng       *rand.Rand
	logger    *slog.Logger
	newTicker func() Ticker
	now       func() time.Time

	mu         sync.Mutex
	state      *State // nil when no session is active
	clockGen   uint64
	stopClock  context.CancelFunc
	lastActive time.Time
}

func New(userID string, test *quiztest.Test, opts Options) *Session {
	s := &Session{
		userID:    userID,
		test:      test,
		snapshots: opts.Snapshots,
		sink:      opts.Sink,
		rng:       opts.Rand,
		logger:    opts.Logger,
		newTicker: opts.NewTicker,
		now:       opts.Now,
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.newTicker == nil {
		s.newTicker = SecondTicker
	}
	if s.now == nil {
		s.now = time.Now
	}
	s.lastActive = s.now()
	return s
}

func (s *Session) UserID() string { return s.userID }

func (s *Session) Test() *quiztest.Test { return s.test }

// Start begins the session. A resume state for the same test is restored
// verbatim, elapsed time included; anything else starts fresh.
func (s *Session) Start(ctx context.Context, resume *State) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.halt()
	s.touch()
	if resume != nil && resume.TestID == s.test.ID && resume.Current() != nil {
		s.state = resume.Clone()
	} else {
		s.state = NewState(s.test, s.rng)
	}
	s.runClock()
	s.persist(ctx)
	if s.snapshots != nil {
		if err := s.snapshots.SaveLastTest(ctx, s.userID, s.test.ID); err != nil {
			s.logger.Error("failed to save last test", "user_id", s.userID, "test_id", s.test.ID, "error", err)
		}
	}
	return s.view()
}

// Resume starts from the persisted snapshot when one exists. A corrupt
// snapshot is discarded and a fresh session is built instead.
func (s *Session) Resume(ctx context.Context) (*State, error) {
	var resume *State
	if s.snapshots != nil {
		st, err := s.snapshots.LoadSnapshot(ctx, s.userID, s.test.ID)
		switch {
		case errors.Is(err, ErrCorruptSnapshot):
			s.logger.Warn("discarding corrupt snapshot", "user_id", s.userID, "test_id", s.test.ID, "error", err)
			if err := s.snapshots.ClearSnapshot(ctx, s.userID, s.test.ID); err != nil {
				s.logger.Error("failed to clear snapshot", "error", err)
			}
		case err != nil:
			return nil, err
		default:
			resume = st
		}
	}
	return s.Start(ctx, resume), nil
}

func (s *Session) SelectAnswer(ctx context.Context, i int) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil
	}
	s.touch()
	if s.state.SelectAnswer(i) {
		s.persist(ctx)
	}
	return s.view()
}

func (s *Session) CheckAnswer(ctx context.Context) *State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil
	}
	s.touch()
	if s.state.CheckAnswer() {
		s.persist(ctx)
	}
	return s.view()
}

// Advance moves to the next question. When the pool empties the session
// completes: the clock stops, the snapshot is cleared, a completion event
// is published and the returned state is nil.
func (s *Session) Advance(ctx context.Context) (*State, *Completion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, nil
	}
	s.touch()
	done, changed := s.state.Advance(s.rng)
	if !changed {
		return s.view(), nil
	}
	if !done {
		s.persist(ctx)
		return s.view(), nil
	}

	st := s.state
	c := &Completion{
		Score:          st.Score(),
		Correct:        st.Correct,
		Incorrect:      st.Incorrect,
		Mastered:       st.Mastered,
		ElapsedSeconds: st.ElapsedSeconds,
	}
	s.finish(ctx)
	s.publish(Event{
		Kind:           EventCompleted,
		UserID:         s.userID,
		TestID:         s.test.ID,
		Score:          c.Score,
		ElapsedSeconds: c.ElapsedSeconds,
	})
	return nil, c
}

// Reset ends the current attempt, reporting its elapsed time, and starts a
// fresh one ignoring any snapshot.
func (s *Session) Reset(ctx context.Context) *State {
	s.mu.Lock()
	if s.state != nil {
		s.endLocked(ctx)
	}
	s.mu.Unlock()
	return s.Start(ctx, nil)
}

// Abandon reports elapsed time, clears the snapshot and stops the clock.
// No score is reported.
func (s *Session) Abandon(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return
	}
	s.endLocked(ctx)
}

// Suspend stops the clock and persists the snapshot without reporting
// anything, so a later Resume continues where the user left off.
func (s *Session) Suspend(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return
	}
	s.halt()
	s.persist(ctx)
	s.state = nil
}

// State returns a copy of the current state, or nil when inactive.
func (s *Session) State() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != nil
}

// IdleSince reports when the user last acted on the session.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Tick adds one second of elapsed time.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickLocked(s.clockGen)
}

func (s *Session) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tickLocked(gen)
}

func (s *Session) tickLocked(gen uint64) {
	// A tick from a clock that was stopped while it waited on the lock
	// belongs to a previous attempt.
	if s.state == nil || gen != s.clockGen {
		return
	}
	s.state.ElapsedSeconds++
}

func (s *Session) runClock() {
	s.clockGen++
	gen := s.clockGen
	ctx, cancel := context.WithCancel(context.Background())
	s.stopClock = cancel
	ticker := s.newTicker()

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				s.tick(gen)
			}
		}
	}()
}

// halt stops the clock. Callers hold s.mu.
func (s *Session) halt() {
	if s.stopClock != nil {
		s.stopClock()
		s.stopClock = nil
	}
	s.clockGen++
}

func (s *Session) endLocked(ctx context.Context) {
	elapsed := s.state.ElapsedSeconds
	s.finish(ctx)
	s.publish(Event{
		Kind:           EventEnded,
		UserID:         s.userID,
		TestID:         s.test.ID,
		ElapsedSeconds: elapsed,
	})
}

func (s *Session) finish(ctx context.Context) {
	s.halt()
	s.state = nil
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.ClearSnapshot(ctx, s.userID, s.test.ID); err != nil {
		s.logger.Error("failed to clear snapshot", "user_id", s.userID, "test_id", s.test.ID, "error", err)
	}
}

func (s *Session) persist(ctx context.Context) {
	if s.snapshots == nil || s.state == nil {
		return
	}
	if err := s.snapshots.SaveSnapshot(ctx, s.userID, s.test.ID, s.state); err != nil {
		s.logger.Error("failed to save snapshot", "user_id", s.userID, "test_id", s.test.ID, "error", err)
	}
}

func (s *Session) publish(e Event) {
	if s.sink != nil {
		s.sink.Publish(e)
	}
}

func (s *Session) touch() {
	s.lastActive = s.now()
}

func (s *Session) view() *State {
	if s.state == nil {
		return nil
	}
	return s.state.Clone()
}
