// Package auth registers users, checks their passwords and hands out
// bearer tokens.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quicktest/backend/internal/domain/user"
	"github.com/quicktest/backend/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type Service struct {
	users    store.UserStore
	sessions *SessionStore
	logger   *slog.Logger
}

func NewService(users store.UserStore, tokenTTL time.Duration, logger *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: NewSessionStore(tokenTTL),
		logger:   logger,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (*user.User, error) {
	u, err := user.New(username, password)
	if err != nil {
		return nil, err
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", "user_id", u.ID, "username", u.Username)
	return u, nil
}

// Login checks the password and issues a token. Unknown users and wrong
// passwords produce the same error.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	u, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !u.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return s.sessions.Create(u.ID, u.Username), nil
}

func (s *Service) Authenticate(token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	sess, ok := s.sessions.Get(token)
	if !ok {
		return nil, ErrInvalidToken
	}
	return sess, nil
}

func (s *Service) Logout(token string) {
	s.sessions.Delete(token)
}

// SweepExpired drops expired tokens. It runs on the scheduler.
func (s *Service) SweepExpired() {
	if n := s.sessions.SweepExpired(); n > 0 {
		s.logger.Info("cleaned up expired tokens", "count", n)
	}
}
