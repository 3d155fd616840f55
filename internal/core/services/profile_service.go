package services

import (
	"context"
	"log/slog"

	"github.com/secureballot/secureballot/internal/core/domain"
	"github.com/secureballot/secureballot/internal/core/ports"
)

type profileService struct {
	api ports.ProfileAPI
	log *slog.Logger
}

func NewProfileService(api ports.ProfileAPI, log *slog.Logger) ports.ProfileService {
	return &profileService{api: api, log: log}
}

func (s *profileService) FetchProfile(ctx context.Context) (*domain.UserProfile, error) {
	return s.api.GetProfile(ctx)
}

func (s *profileService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error) {
	profile, err := s.api.UpdateProfile(ctx, update)
	if err != nil {
		return nil, err
	}
	s.log.Info("profile updated", slog.String("voter_id", profile.VoterID))
	return profile, nil
}

func (s *profileService) FetchPollingUnit(ctx context.Context) (*domain.PollingUnit, error) {
	return s.api.GetPollingUnit(ctx)
}
