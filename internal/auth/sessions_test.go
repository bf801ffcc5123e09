package auth

import (
	"testing"
	"time"
)

func TestSessionStore_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessionStore(time.Hour)
	s.now = func() time.Time { return now }

	sess := s.Create("u1", "alice")
	if got, ok := s.Get(sess.Token); !ok || got.UserID != "u1" {
		t.Fatalf("expected live session, got %+v %v", got, ok)
	}

	now = now.Add(2 * time.Hour)
	if _, ok := s.Get(sess.Token); ok {
		t.Error("expected expired token to be rejected")
	}
	if len(s.sessions) != 0 {
		t.Errorf("expected expired token to be removed, have %d", len(s.sessions))
	}
}

func TestSessionStore_SweepExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSessionStore(time.Hour)
	s.now = func() time.Time { return now }

	s.Create("u1", "alice")
	now = now.Add(30 * time.Minute)
	fresh := s.Create("u2", "bob")

	now = now.Add(45 * time.Minute)
	if n := s.SweepExpired(); n != 1 {
		t.Errorf("expected 1 swept token, got %d", n)
	}
	if _, ok := s.Get(fresh.Token); !ok {
		t.Error("expected the newer token to survive")
	}
}

func TestSessionStore_DeleteUserSessions(t *testing.T) {
	s := NewSessionStore(time.Hour)
	a := s.Create("u1", "alice")
	b := s.Create("u1", "alice")
	c := s.Create("u2", "bob")

	s.DeleteUserSessions("u1")

	for _, tok := range []string{a.Token, b.Token} {
		if _, ok := s.Get(tok); ok {
			t.Errorf("expected token %s to be gone", tok)
		}
	}
	if _, ok := s.Get(c.Token); !ok {
		t.Error("expected other user's token to remain")
	}
}

func TestLimiter_PerKey(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter(0.001, 2)
	l.now = func() time.Time { return now }

	if !l.Allow("1.1.1.1") || !l.Allow("1.1.1.1") {
		t.Fatal("expected burst of 2 to be allowed")
	}
	if l.Allow("1.1.1.1") {
		t.Error("expected third request to be limited")
	}
	if !l.Allow("2.2.2.2") {
		t.Error("expected another key to have its own budget")
	}

	now = now.Add(time.Hour)
	l.Prune(time.Minute)
	if !l.Allow("1.1.1.1") {
		t.Error("expected a pruned key to start over")
	}
}
