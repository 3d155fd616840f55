package rest

import (
	"context"
	"net/http"

	"github.com/secureballot/secureballot/internal/core/domain"
)

type loginRequest struct {
	VoterID  string `json:"voter_id"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  *domain.UserProfile `json:"user"`
	Token string              `json:"token"`
}

func (c *Client) Login(ctx context.Context, voterID, password string) (*domain.UserProfile, string, error) {
	var out loginResponse
	err := c.doWithToken(ctx, http.MethodPost, "/api/v1/auth/login", "",
		loginRequest{VoterID: voterID, Password: password}, &out)
	if err != nil {
		return nil, "", err
	}
	return out.User, out.Token, nil
}

func (c *Client) RestoreSession(ctx context.Context, token string) (*domain.UserProfile, error) {
	var out domain.UserProfile
	if err := c.doWithToken(ctx, http.MethodGet, "/api/v1/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
}
