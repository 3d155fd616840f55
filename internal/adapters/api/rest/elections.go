package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/secureballot/secureballot/internal/core/domain"
)

func (c *Client) ListElections(ctx context.Context) ([]*domain.Election, error) {
	var out []*domain.Election
	if err := c.do(ctx, http.MethodGet, "/api/v1/elections", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetElection(ctx context.Context, id string) (*domain.Election, error) {
	var out domain.Election
	err := c.do(ctx, http.MethodGet, "/api/v1/elections/"+url.PathEscape(id), nil, &out)
	if err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, domain.ErrElectionNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCandidates(ctx context.Context, electionID string) ([]*domain.Candidate, error) {
	var out []*domain.Candidate
	path := "/api/v1/elections/" + url.PathEscape(electionID) + "/candidates"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, domain.ErrElectionNotFound
		}
		return nil, err
	}
	return out, nil
}

func (c *Client) GetVotingStatus(ctx context.Context, electionID string) (*domain.VotingStatus, error) {
	var out domain.VotingStatus
	path := "/api/v1/elections/" + url.PathEscape(electionID) + "/voting-status"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, domain.ErrElectionNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetStatistics(ctx context.Context, electionID string) (*domain.ElectionStats, error) {
	var out domain.ElectionStats
	path := "/api/v1/elections/" + url.PathEscape(electionID) + "/statistics"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, domain.ErrElectionNotFound
		}
		return nil, err
	}
	return &out, nil
}
