package rest

import (
	"context"
	"net/http"

	"github.com/secureballot/secureballot/internal/core/domain"
)

func (c *Client) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.do(ctx, http.MethodGet, "/api/v1/voter/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.do(ctx, http.MethodPut, "/api/v1/voter/profile", update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPollingUnit(ctx context.Context) (*domain.PollingUnit, error) {
	var out domain.PollingUnit
	if err := c.do(ctx, http.MethodGet, "/api/v1/voter/polling-unit", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
