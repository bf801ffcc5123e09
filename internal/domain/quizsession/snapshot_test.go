package quizsession_test

import (
	"errors"
	"testing"

	"github.com/quicktest/backend/internal/domain/quizsession"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	st := quizsession.NewState(createTestWithQuestions(3), newRand())
	st.SelectAnswer(2)
	st.SelectAnswer(0)
	st.CheckAnswer()
	st.ElapsedSeconds = 41

	data, err := quizsession.EncodeState(st)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := quizsession.DecodeState(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got.CurrentID != st.CurrentID || got.ElapsedSeconds != 41 || got.Correct != 1 ||
		got.Outcome != quizsession.OutcomeCorrect || !equalInts(got.Selected, []int{0, 2}) {
		t.Errorf("round trip mismatch: got %+v want %+v", got, st)
	}
	cur := got.Current()
	if cur == nil || cur.Question.Question != st.Current().Question.Question || cur.Repetitions != 1 {
		t.Errorf("expected current question with repetitions 1, got %+v", cur)
	}
}

func TestDecodeState_Corrupt(t *testing.T) {
	cases := map[string]string{
		"not json":         `{"test_id":`,
		"missing test":     `{"outcome":"unchecked"}`,
		"unknown outcome":  `{"test_id":"t1","outcome":"maybe"}`,
		"dangling current": `{"test_id":"t1","outcome":"unchecked","current_id":"qx","pool":[]}`,
		"negative reps":    `{"test_id":"t1","outcome":"unchecked","current_id":"q1","pool":[{"id":"q1","answers":["a","b"],"repetitions":-1}]}`,
		"selection range":  `{"test_id":"t1","outcome":"unchecked","current_id":"q1","selected":[5],"pool":[{"id":"q1","answers":["a","b"],"repetitions":2}]}`,
		"pool, no current": `{"test_id":"t1","outcome":"unchecked","pool":[{"id":"q1","answers":["a","b"],"repetitions":2}]}`,
		"negative elapsed": `{"test_id":"t1","outcome":"unchecked","elapsed_seconds":-3}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := quizsession.DecodeState([]byte(data))
			if !errors.Is(err, quizsession.ErrCorruptSnapshot) {
				t.Errorf("expected ErrCorruptSnapshot, got %v", err)
			}
		})
	}
}
