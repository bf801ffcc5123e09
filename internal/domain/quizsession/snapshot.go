package quizsession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrCorruptSnapshot is returned when a persisted snapshot cannot be
// decoded or describes an impossible state.
var ErrCorruptSnapshot = errors.New("corrupt session snapshot")

// SnapshotStore persists in-progress sessions keyed by user and test, plus
// a pointer to the test the user last selected.
type SnapshotStore interface {
	// LoadSnapshot returns nil, nil when no snapshot exists.
	LoadSnapshot(ctx context.Context, userID, testID string) (*State, error)
	SaveSnapshot(ctx context.Context, userID, testID string, st *State) error
	ClearSnapshot(ctx context.Context, userID, testID string) error

	SaveLastTest(ctx context.Context, userID, testID string) error
	// LastTest returns "" when the user has no last test.
	LastTest(ctx context.Context, userID string) (string, error)
}

// EncodeState serializes a state for storage.
func EncodeState(st *State) ([]byte, error) {
	return json.Marshal(st)
}

// DecodeState parses and sanity-checks a stored state.
func DecodeState(data []byte) (*State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if err := st.check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if st.Selected == nil {
		st.Selected = []int{}
	}
	return &st, nil
}

func (s *State) check() error {
	if s.TestID == "" {
		return errors.New("missing test id")
	}
	if s.Correct < 0 || s.Incorrect < 0 || s.Mastered < 0 || s.ElapsedSeconds < 0 {
		return errors.New("negative counter")
	}
	switch s.Outcome {
	case OutcomeUnchecked, OutcomeCorrect, OutcomeIncorrect:
	default:
		return fmt.Errorf("unknown outcome %q", s.Outcome)
	}
	for _, q := range s.Pool {
		if q.Repetitions < 0 {
			return fmt.Errorf("question %s has negative repetitions", q.ID)
		}
	}
	if s.CurrentID == "" {
		if len(s.Pool) > 0 {
			return errors.New("non-empty pool without a current question")
		}
		return nil
	}
	cur := s.Current()
	if cur == nil {
		return fmt.Errorf("current question %s not in pool", s.CurrentID)
	}
	for _, i := range s.Selected {
		if i < 0 || i >= len(cur.Answers) {
			return fmt.Errorf("selected answer %d out of range", i)
		}
	}
	return nil
}

// MemorySnapshots is an in-process SnapshotStore. It stores encoded bytes
// so reads go through the same codec as the database store.
type MemorySnapshots struct {
	mu        sync.Mutex
	snapshots map[string][]byte
	last      map[string]string
}

var _ SnapshotStore = (*MemorySnapshots)(nil)

func NewMemorySnapshots() *MemorySnapshots {
	return &MemorySnapshots{
		snapshots: make(map[string][]byte),
		last:      make(map[string]string),
	}
}

func snapshotKey(userID, testID string) string {
	return userID + "/" + testID
}

func (m *MemorySnapshots) LoadSnapshot(_ context.Context, userID, testID string) (*State, error) {
	m.mu.Lock()
	data, ok := m.snapshots[snapshotKey(userID, testID)]
	m.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return DecodeState(data)
}

func (m *MemorySnapshots) SaveSnapshot(_ context.Context, userID, testID string, st *State) error {
	data, err := EncodeState(st)
	if err != nil {
		return err
	}
	m.Put(userID, testID, data)
	return nil
}

// Put stores raw snapshot bytes as-is.
func (m *MemorySnapshots) Put(userID, testID string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[snapshotKey(userID, testID)] = data
}

func (m *MemorySnapshots) ClearSnapshot(_ context.Context, userID, testID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, snapshotKey(userID, testID))
	return nil
}

func (m *MemorySnapshots) SaveLastTest(_ context.Context, userID, testID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last[userID] = testID
	return nil
}

func (m *MemorySnapshots) LastTest(_ context.Context, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last[userID], nil
}
