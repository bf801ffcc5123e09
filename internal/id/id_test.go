package id_test

import (
	"testing"

	"github.com/quicktest/backend/internal/id"
)

func TestGenerateID(t *testing.T) {
	a := id.GenerateID()
	b := id.GenerateID()

	if len(a) != 16 {
		t.Errorf("expected 16 characters, got %d", len(a))
	}
	if a == b {
		t.Error("expected different IDs")
	}
}

func TestNewToken_Unique(t *testing.T) {
	if id.NewToken() == id.NewToken() {
		t.Error("expected different tokens")
	}
}
