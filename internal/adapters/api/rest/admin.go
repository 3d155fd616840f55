package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/secureballot/secureballot/internal/core/domain"
	"github.com/secureballot/secureballot/internal/core/ports"
)

type createElectionRequest struct {
	Name         string `json:"name"`
	ElectionType string `json:"election_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

type addCandidateRequest struct {
	FullName  string `json:"full_name"`
	PartyCode string `json:"party_code"`
	PartyName string `json:"party_name"`
	Bio       string `json:"bio,omitempty"`
	Manifesto string `json:"manifesto,omitempty"`
}

type publishRequest struct {
	Level domain.PublishLevel `json:"level"`
}

func (c *Client) CreateElection(ctx context.Context, input ports.CreateElectionInput) (*domain.Election, error) {
	var out domain.Election
	body := createElectionRequest{
		Name:         input.Name,
		ElectionType: input.ElectionType,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/admin/elections", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddCandidates(ctx context.Context, electionID string, input []ports.CandidateInput) ([]*domain.Candidate, error) {
	body := make([]addCandidateRequest, 0, len(input))
	for _, in := range input {
		body = append(body, addCandidateRequest{
			FullName:  in.FullName,
			PartyCode: in.PartyCode,
			PartyName: in.PartyName,
			Bio:       in.Bio,
			Manifesto: in.Manifesto,
		})
	}

	var out []*domain.Candidate
	path := "/api/v1/admin/elections/" + url.PathEscape(electionID) + "/candidates"
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, domain.ErrElectionNotFound
		}
		return nil, err
	}
	return out, nil
}

func (c *Client) PublishResults(ctx context.Context, electionID string, level domain.PublishLevel) error {
	path := "/api/v1/admin/elections/" + url.PathEscape(electionID) + "/publish"
	err := c.do(ctx, http.MethodPost, path, publishRequest{Level: level}, nil)
	if err != nil && statusIs(err, http.StatusNotFound) {
		return domain.ErrElectionNotFound
	}
	return err
}
