package ports

import (
	"context"

	"github.com/secureballot/secureballot/internal/core/domain"
)

// TokenCache persists the bearer token between runs so the session store can
// attempt a silent restore on startup.
type TokenCache interface {
	Load() (string, error)
	Store(token string) error
	Clear() error
}

// SessionStore is the single source of truth for authentication state and
// the shared error notice. Implementations must be safe for concurrent use.
type SessionStore interface {
	// Initialize attempts a silent session restore from the token cache.
	// It marks the store initialized exactly once, whether or not the
	// restore succeeds.
	Initialize(ctx context.Context) error
	Login(ctx context.Context, voterID, password string) (*domain.UserProfile, error)
	Logout(ctx context.Context) error

	Session() domain.Session
	Token() string

	// SetError replaces the shared error notice; last write wins.
	SetError(message string)
	ClearError()
	LastError() string
}
