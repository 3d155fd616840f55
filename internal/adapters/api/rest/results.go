package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/secureballot/secureballot/internal/core/domain"
)

func (c *Client) GetResults(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error) {
	return c.getSnapshot(ctx, electionID, "/results")
}

func (c *Client) GetLiveResults(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error) {
	return c.getSnapshot(ctx, electionID, "/results/live")
}

func (c *Client) getSnapshot(ctx context.Context, electionID, suffix string) (*domain.ResultsSnapshot, error) {
	var out domain.ResultsSnapshot
	path := "/api/v1/elections/" + url.PathEscape(electionID) + suffix
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, domain.ErrElectionNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetRegionalResults(ctx context.Context, electionID string) ([]domain.RegionalResult, error) {
	var out []domain.RegionalResult
	path := "/api/v1/elections/" + url.PathEscape(electionID) + "/results/regions"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, domain.ErrElectionNotFound
		}
		return nil, err
	}
	return out, nil
}

func (c *Client) GetHistoricalResults(ctx context.Context, electionID string) ([]domain.ResultsPoint, error) {
	var out []domain.ResultsPoint
	path := "/api/v1/elections/" + url.PathEscape(electionID) + "/results/history"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, domain.ErrElectionNotFound
		}
		return nil, err
	}
	return out, nil
}
