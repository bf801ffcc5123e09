package quizsession_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/quicktest/backend/internal/domain/quizsession"
	"github.com/quicktest/backend/internal/domain/quiztest"
)

// stillTicker never fires; tests advance the clock with Session.Tick.
type stillTicker struct{ c chan time.Time }

func (t stillTicker) C() <-chan time.Time { return t.c }
func (t stillTicker) Stop()               {}

type recordingSink struct {
	mu     sync.Mutex
	events []quizsession.Event
}

func (s *recordingSink) Publish(e quizsession.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *recordingSink) Events() []quizsession.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]quizsession.Event(nil), s.events...)
}

type fixture struct {
	session   *quizsession.Session
	snapshots *quizsession.MemorySnapshots
	sink      *recordingSink
}

func newFixture(test *quiztest.Test) *fixture {
	f := &fixture{
		snapshots: quizsession.NewMemorySnapshots(),
		sink:      &recordingSink{},
	}
	f.session = quizsession.New("user-1", test, quizsession.Options{
		Snapshots: f.snapshots,
		Sink:      f.sink,
		Rand:      newRand(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		NewTicker: func() quizsession.Ticker { return stillTicker{c: make(chan time.Time)} },
	})
	return f
}

func TestSession_SingleQuestionScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(singleQuestionTest())

	st := f.session.Start(ctx, nil)
	if len(st.Pool) != 1 || st.Pool[0].Repetitions != 2 {
		t.Fatalf("expected pool of 1 with repetitions 2, got %+v", st.Pool)
	}

	f.session.SelectAnswer(ctx, 1)
	st = f.session.CheckAnswer(ctx)
	if st.Outcome != quizsession.OutcomeCorrect || st.Current().Repetitions != 1 || st.Correct != 1 {
		t.Fatalf("unexpected state after correct check: %+v", st)
	}

	st, done := f.session.Advance(ctx)
	if done != nil {
		t.Fatal("expected session to continue")
	}
	if st.CurrentID != "q1" || len(st.Selected) != 0 || st.Checked {
		t.Fatalf("expected q1 redrawn with cleared selection, got %+v", st)
	}

	f.session.SelectAnswer(ctx, 1)
	f.session.CheckAnswer(ctx)
	st, done = f.session.Advance(ctx)

	if st != nil {
		t.Errorf("expected no active state after completion, got %+v", st)
	}
	if done == nil || done.Score != 100 {
		t.Fatalf("expected completion with score 100, got %+v", done)
	}
	if f.session.Active() {
		t.Error("expected session to be inactive")
	}

	snap, err := f.snapshots.LoadSnapshot(ctx, "user-1", "t1")
	if err != nil || snap != nil {
		t.Errorf("expected snapshot cleared, got %+v, %v", snap, err)
	}

	events := f.sink.Events()
	if len(events) != 1 || events[0].Kind != quizsession.EventCompleted || events[0].Score != 100 {
		t.Errorf("expected one completion event with score 100, got %+v", events)
	}
}

func TestSession_WrongAnswerScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(singleQuestionTest())
	f.session.Start(ctx, nil)

	f.session.SelectAnswer(ctx, 2)
	st := f.session.CheckAnswer(ctx)

	if st.Current().Repetitions != 3 || st.Incorrect != 1 || len(st.Pool) != 1 {
		t.Errorf("expected repetitions 3, incorrect 1, pool 1; got %+v", st)
	}
}

func TestSession_SnapshotWrittenAfterEachOperation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(singleQuestionTest())
	f.session.Start(ctx, nil)

	f.session.SelectAnswer(ctx, 1)
	snap, _ := f.snapshots.LoadSnapshot(ctx, "user-1", "t1")
	if snap == nil || !equalInts(snap.Selected, []int{1}) {
		t.Fatalf("expected snapshot with selection [1], got %+v", snap)
	}

	f.session.CheckAnswer(ctx)
	snap, _ = f.snapshots.LoadSnapshot(ctx, "user-1", "t1")
	if !snap.Checked || snap.Correct != 1 {
		t.Errorf("expected checked snapshot, got %+v", snap)
	}

	last, _ := f.snapshots.LastTest(ctx, "user-1")
	if last != "t1" {
		t.Errorf("expected last test t1, got %q", last)
	}
}

func TestSession_ResumeRestoresExactState(t *testing.T) {
	ctx := context.Background()
	test := createTestWithQuestions(4)
	f := newFixture(test)
	f.session.Start(ctx, nil)

	f.session.SelectAnswer(ctx, 0)
	f.session.CheckAnswer(ctx)
	f.session.Advance(ctx)
	f.session.SelectAnswer(ctx, 1)
	for i := 0; i < 5; i++ {
		f.session.Tick()
	}
	want := f.session.CheckAnswer(ctx)
	f.session.Suspend(ctx)

	resumed := quizsession.New("user-1", test, quizsession.Options{
		Snapshots: f.snapshots,
		Rand:      newRand(),
		NewTicker: func() quizsession.Ticker { return stillTicker{c: make(chan time.Time)} },
	})
	got, err := resumed.Resume(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.CurrentID != want.CurrentID || got.ElapsedSeconds != 5 ||
		got.Correct != want.Correct || got.Incorrect != want.Incorrect ||
		got.Checked != want.Checked || got.Outcome != want.Outcome ||
		!equalInts(got.Selected, want.Selected) {
		t.Errorf("resumed state differs:\n got  %+v\n want %+v", got, want)
	}
	if len(got.Pool) != len(want.Pool) {
		t.Fatalf("expected pool of %d, got %d", len(want.Pool), len(got.Pool))
	}
	for i := range got.Pool {
		if got.Pool[i].ID != want.Pool[i].ID || got.Pool[i].Repetitions != want.Pool[i].Repetitions {
			t.Errorf("pool item %d differs: got %+v want %+v", i, got.Pool[i], want.Pool[i])
		}
	}
}

func TestSession_StartIgnoresSnapshotForOtherTest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(singleQuestionTest())

	other := &quizsession.State{TestID: "other", ElapsedSeconds: 99, Outcome: quizsession.OutcomeUnchecked}
	st := f.session.Start(ctx, other)

	if st.TestID != "t1" || st.ElapsedSeconds != 0 {
		t.Errorf("expected fresh session for t1, got %+v", st)
	}
}

func TestSession_CorruptSnapshotStartsFresh(t *testing.T) {
	ctx := context.Background()
	f := newFixture(singleQuestionTest())
	f.snapshots.Put("user-1", "t1", []byte("{not json"))

	st, err := f.session.Resume(ctx)
	if err != nil {
		t.Fatalf("expected corrupt snapshot to be recovered, got %v", err)
	}
	if st == nil || len(st.Pool) != 1 || st.Pool[0].Repetitions != 2 {
		t.Errorf("expected fresh session, got %+v", st)
	}
}

func TestSession_TickCountsElapsed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(singleQuestionTest())
	f.session.Start(ctx, nil)

	f.session.Tick()
	f.session.Tick()

	if got := f.session.State().ElapsedSeconds; got != 2 {
		t.Errorf("expected 2 elapsed seconds, got %d", got)
	}
}

func TestSession_ClockDrivesElapsed(t *testing.T) {
	ctx := context.Background()
	ticks := make(chan time.Time)
	session := quizsession.New("user-1", singleQuestionTest(), quizsession.Options{
		Rand:      newRand(),
		NewTicker: func() quizsession.Ticker { return stillTicker{c: ticks} },
	})
	session.Start(ctx, nil)

	ticks <- time.Now()
	ticks <- time.Now()
	// The third send only completes once the second tick has been consumed.
	ticks <- time.Now()

	deadline := time.Now().Add(time.Second)
	for session.State().ElapsedSeconds < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("expected at least 2 elapsed seconds, got %d", session.State().ElapsedSeconds)
		}
		time.Sleep(time.Millisecond)
	}
	session.Abandon(ctx)
}

func TestSession_AbandonReportsTimeOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(singleQuestionTest())
	f.session.Start(ctx, nil)
	f.session.Tick()
	f.session.Tick()
	f.session.Tick()

	f.session.Abandon(ctx)

	events := f.sink.Events()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Kind != quizsession.EventEnded || events[0].ElapsedSeconds != 3 || events[0].Score != 0 {
		t.Errorf("unexpected event: %+v", events[0])
	}
	if f.session.Active() {
		t.Error("expected inactive session after abandon")
	}
	if snap, _ := f.snapshots.LoadSnapshot(ctx, "user-1", "t1"); snap != nil {
		t.Error("expected snapshot cleared after abandon")
	}

	// Ticks after the session ended are dropped.
	f.session.Tick()
	if f.session.State() != nil {
		t.Error("expected no state after abandon")
	}
}

func TestSession_ResetStartsOver(t *testing.T) {
	ctx := context.Background()
	f := newFixture(singleQuestionTest())
	f.session.Start(ctx, nil)
	f.session.SelectAnswer(ctx, 0)
	f.session.CheckAnswer(ctx)
	f.session.Tick()

	st := f.session.Reset(ctx)

	if st.Incorrect != 0 || st.ElapsedSeconds != 0 || st.Pool[0].Repetitions != 2 || st.Checked {
		t.Errorf("expected fresh state after reset, got %+v", st)
	}
	events := f.sink.Events()
	if len(events) != 1 || events[0].Kind != quizsession.EventEnded || events[0].ElapsedSeconds != 1 {
		t.Errorf("expected one ended event with 1 second, got %+v", events)
	}
}

func TestSession_SuspendDoesNotReport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(singleQuestionTest())
	f.session.Start(ctx, nil)
	f.session.Tick()

	f.session.Suspend(ctx)

	if len(f.sink.Events()) != 0 {
		t.Error("expected no events on suspend")
	}
	snap, _ := f.snapshots.LoadSnapshot(ctx, "user-1", "t1")
	if snap == nil || snap.ElapsedSeconds != 1 {
		t.Errorf("expected snapshot with 1 elapsed second, got %+v", snap)
	}
}

func TestSession_InactiveOperationsReturnNil(t *testing.T) {
	ctx := context.Background()
	f := newFixture(singleQuestionTest())

	if f.session.SelectAnswer(ctx, 0) != nil || f.session.CheckAnswer(ctx) != nil {
		t.Error("expected nil state before start")
	}
	if st, c := f.session.Advance(ctx); st != nil || c != nil {
		t.Error("expected nil advance before start")
	}
	f.session.Abandon(ctx)
	if len(f.sink.Events()) != 0 {
		t.Error("expected abandon of an inactive session to report nothing")
	}
}
