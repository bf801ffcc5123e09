package quizsession

import (
	"math/rand"
	"slices"

	"github.com/quicktest/backend/internal/domain/quiztest"
)

// InitialRepetitions is the number of correct checks a fresh question
// needs before it retires from the pool.
const InitialRepetitions = 2

// Outcome is the result of the last check on the current question.
type Outcome string

const (
	OutcomeUnchecked Outcome = "unchecked"
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// SessionQuestion is a question plus its remaining repetitions.
type SessionQuestion struct {
	quiztest.Question
	Repetitions int `json:"repetitions"`
}

// State is the full in-progress state of one quiz attempt. It is also the
// snapshot payload, so every field round-trips through JSON.
type State struct {
	TestID         string            `json:"test_id"`
	Pool           []SessionQuestion `json:"pool"`
	CurrentID      string            `json:"current_id,omitempty"`
	Selected       []int             `json:"selected"`
	Checked        bool              `json:"checked"`
	Outcome        Outcome           `json:"outcome"`
	Mastered       int               `json:"mastered"`
	Correct        int               `json:"correct"`
	Incorrect      int               `json:"incorrect"`
	ElapsedSeconds int               `json:"elapsed_seconds"`
}

// NewState builds a fresh state for test: every question enters the pool
// with InitialRepetitions, the pool is shuffled and a current question is
// drawn uniformly at random.
func NewState(test *quiztest.Test, rng *rand.Rand) *State {
	pool := make([]SessionQuestion, len(test.Questions))
	for i, q := range test.Questions {
		pool[i] = SessionQuestion{Question: q, Repetitions: InitialRepetitions}
	}

	// rand.Shuffle is Fisher-Yates.
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	s := &State{
		TestID:   test.ID,
		Pool:     pool,
		Selected: []int{},
		Outcome:  OutcomeUnchecked,
	}
	s.draw(rng)
	return s
}

// Current returns the presented question, or nil.
func (s *State) Current() *SessionQuestion {
	if i := s.currentIndex(); i >= 0 {
		return &s.Pool[i]
	}
	return nil
}

func (s *State) currentIndex() int {
	if s.CurrentID == "" {
		return -1
	}
	for i := range s.Pool {
		if s.Pool[i].ID == s.CurrentID {
			return i
		}
	}
	return -1
}

// SelectAnswer toggles answer i in the selection. It reports whether the
// state changed: selection is locked once checked, and out-of-range
// indices are ignored.
func (s *State) SelectAnswer(i int) bool {
	cur := s.Current()
	if cur == nil || s.Checked || i < 0 || i >= len(cur.Answers) {
		return false
	}

	if pos, found := slices.BinarySearch(s.Selected, i); found {
		s.Selected = slices.Delete(s.Selected, pos, pos+1)
	} else {
		s.Selected = slices.Insert(s.Selected, pos, i)
	}
	return true
}

// CheckAnswer grades the selection against the current question. The
// selection must equal the correct set exactly; order does not matter.
func (s *State) CheckAnswer() bool {
	cur := s.Current()
	if cur == nil || s.Checked {
		return false
	}

	if Grade(s.Selected, cur.CorrectAnswers) {
		s.Correct++
		cur.Repetitions = max(0, cur.Repetitions-1)
		s.Outcome = OutcomeCorrect
	} else {
		s.Incorrect++
		cur.Repetitions++
		s.Outcome = OutcomeIncorrect
	}
	s.Checked = true
	return true
}

// Advance moves past a checked question. Retired questions (zero
// repetitions) leave the pool. It returns done=true when the pool is
// empty; changed is false when there was nothing to advance past.
func (s *State) Advance(rng *rand.Rand) (done, changed bool) {
	if s.Current() == nil || !s.Checked {
		return false, false
	}

	if s.Outcome == OutcomeCorrect {
		s.Mastered++
	}

	s.Pool = slices.DeleteFunc(s.Pool, func(q SessionQuestion) bool {
		return q.Repetitions == 0
	})

	s.Selected = []int{}
	s.Checked = false
	s.Outcome = OutcomeUnchecked
	s.CurrentID = ""

	if len(s.Pool) == 0 {
		return true, true
	}
	s.draw(rng)
	return false, true
}

// Score is the percentage of correct checks, 0 when nothing was checked.
func (s *State) Score() float64 {
	total := s.Correct + s.Incorrect
	if total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(total) * 100
}

// draw picks the current question uniformly over the whole pool.
// Repetitions never bias the draw.
func (s *State) draw(rng *rand.Rand) {
	if len(s.Pool) == 0 {
		s.CurrentID = ""
		return
	}
	s.CurrentID = s.Pool[rng.Intn(len(s.Pool))].ID
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	c := *s
	c.Pool = make([]SessionQuestion, len(s.Pool))
	for i, q := range s.Pool {
		c.Pool[i] = q
		c.Pool[i].Answers = slices.Clone(q.Answers)
		c.Pool[i].CorrectAnswers = slices.Clone(q.CorrectAnswers)
	}
	c.Selected = slices.Clone(s.Selected)
	if c.Selected == nil {
		c.Selected = []int{}
	}
	return &c
}

// Grade reports whether selected and correct hold the same indices.
func Grade(selected, correct []int) bool {
	a := slices.Clone(selected)
	b := slices.Clone(correct)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
