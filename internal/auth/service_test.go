package auth_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/quicktest/backend/internal/auth"
	"github.com/quicktest/backend/internal/domain/user"
	"github.com/quicktest/backend/internal/store"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()
	s, err := store.NewSQLite(":memory:", time.Sunday)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return auth.NewService(s, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_RegisterLoginLogout(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "  alice ", "secret-pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if u.Username != "alice" {
		t.Errorf("expected trimmed username, got %q", u.Username)
	}

	sess, err := svc.Login(ctx, "alice", "secret-pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	got, err := svc.Authenticate(sess.Token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if got.UserID != u.ID {
		t.Errorf("expected user %s, got %s", u.ID, got.UserID)
	}

	svc.Logout(sess.Token)
	if _, err := svc.Authenticate(sess.Token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken after logout, got %v", err)
	}
}

func TestService_RegisterErrors(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "bob", "123"); !errors.Is(err, user.ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
	if _, err := svc.Register(ctx, "", "secret-pass"); !errors.Is(err, user.ErrUsernameRequired) {
		t.Errorf("expected ErrUsernameRequired, got %v", err)
	}
	if _, err := svc.Register(ctx, "bob", "secret-pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "bob", "other-pass"); !errors.Is(err, user.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestService_LoginFailures(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "carol", "secret-pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "carol", "not-it"},
		{"unknown user", "dave", "secret-pass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(ctx, tt.username, tt.password); !errors.Is(err, auth.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestService_AuthenticateEmptyToken(t *testing.T) {
	svc := newService(t)
	if _, err := svc.Authenticate(""); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
