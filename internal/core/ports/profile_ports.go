package ports

import (
	"context"

	"github.com/secureballot/secureballot/internal/core/domain"
)

type ProfileService interface {
	FetchProfile(ctx context.Context) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error)
	FetchPollingUnit(ctx context.Context) (*domain.PollingUnit, error)
}
