package usagestats

import (
	"errors"
	"time"
)

var (
	ErrInvalidScore    = errors.New("score must be between 0 and 100")
	ErrInvalidDuration = errors.New("time spent cannot be negative")
)

// Stats holds a user's completed-test count and running average score.
type Stats struct {
	UserID         string
	CompletedTests int
	TotalScore     float64
	AverageScore   float64
}

// Record folds one completed test into the running mean.
func (s Stats) Record(score float64) (Stats, error) {
	if score < 0 || score > 100 {
		return s, ErrInvalidScore
	}
	s.CompletedTests++
	s.TotalScore += score
	s.AverageScore = s.TotalScore / float64(s.CompletedTests)
	return s, nil
}

// WeeklyTime is the time-on-task bucket for one user and week.
type WeeklyTime struct {
	UserID       string
	WeekStart    time.Time
	TotalSeconds int
}

// WeekStart returns midnight of the most recent firstDay on or before t,
// in t's location.
func WeekStart(t time.Time, firstDay time.Weekday) time.Time {
	offset := (int(t.Weekday()) - int(firstDay) + 7) % 7
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}
