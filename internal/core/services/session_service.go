package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/secureballot/secureballot/internal/core/domain"
	"github.com/secureballot/secureballot/internal/core/ports"
	"github.com/secureballot/secureballot/internal/lib/logger/sl"
)

type sessionStore struct {
	api   ports.AuthAPI
	cache ports.TokenCache
	log   *slog.Logger

	mu          sync.Mutex
	user        *domain.UserProfile
	token       string
	initialized bool
	lastError   string
}

func NewSessionStore(api ports.AuthAPI, cache ports.TokenCache, log *slog.Logger) ports.SessionStore {
	return &sessionStore{
		api:   api,
		cache: cache,
		log:   log,
	}
}

func (s *sessionStore) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	// Initialized is set no matter how the restore goes; consumers gate on
	// it to avoid acting before the restore attempt has finished.
	defer func() { s.initialized = true }()

	token, err := s.cache.Load()
	if err != nil {
		s.log.Warn("token cache read failed", sl.Err(err))
		return nil
	}
	if token == "" {
		return nil
	}

	user, err := s.api.RestoreSession(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			if cerr := s.cache.Clear(); cerr != nil {
				s.log.Warn("token cache clear failed", sl.Err(cerr))
			}
			return nil
		}
		return err
	}

	s.user = user
	s.token = token
	s.log.Info("session restored", slog.String("voter_id", user.VoterID))
	return nil
}

func (s *sessionStore) Login(ctx context.Context, voterID, password string) (*domain.UserProfile, error) {
	user, token, err := s.api.Login(ctx, voterID, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.initialized = true
	s.lastError = ""
	s.mu.Unlock()

	if err := s.cache.Store(token); err != nil {
		s.log.Warn("token cache write failed", sl.Err(err))
	}
	s.log.Info("logged in", slog.String("voter_id", user.VoterID))
	return user, nil
}

func (s *sessionStore) Logout(ctx context.Context) error {
	s.mu.Lock()
	hadToken := s.token != ""
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if err := s.cache.Clear(); err != nil {
		s.log.Warn("token cache clear failed", sl.Err(err))
	}

	if !hadToken {
		return nil
	}
	// Server-side revocation is best effort; local state is already gone.
	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn("server logout failed", sl.Err(err))
	}
	return nil
}

func (s *sessionStore) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Session{
		User:          s.user,
		Token:         s.token,
		Authenticated: s.user != nil && s.token != "",
		Initialized:   s.initialized,
	}
}

func (s *sessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *sessionStore) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastError = message
}

func (s *sessionStore) ClearError() {
	s.SetError("")
}

func (s *sessionStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}
