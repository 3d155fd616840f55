package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/secureballot/secureballot/internal/core/domain"
)

type castVoteRequest struct {
	CandidateID string `json:"candidate_id"`
}

func (c *Client) CheckEligibility(ctx context.Context, electionID string) (*domain.Eligibility, error) {
	var out domain.Eligibility
	path := "/api/v1/elections/" + url.PathEscape(electionID) + "/eligibility"
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, domain.ErrElectionNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) CastVote(ctx context.Context, electionID, candidateID string) (*domain.VoteReceipt, error) {
	var out domain.VoteReceipt
	path := "/api/v1/elections/" + url.PathEscape(electionID) + "/vote"
	err := c.do(ctx, http.MethodPost, path, castVoteRequest{CandidateID: candidateID}, &out)
	if err != nil {
		switch {
		case statusIs(err, http.StatusConflict):
			return nil, domain.ErrAlreadyVoted
		case statusIs(err, http.StatusForbidden):
			return nil, domain.ErrNotEligible
		case statusIs(err, http.StatusNotFound):
			return nil, domain.ErrElectionNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) VerifyReceipt(ctx context.Context, receiptCode string) (*domain.ReceiptVerification, error) {
	var out domain.ReceiptVerification
	path := "/api/v1/votes/verify/" + url.PathEscape(receiptCode)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		if statusIs(err, http.StatusNotFound) {
			return nil, domain.ErrReceiptNotFound
		}
		return nil, err
	}
	return &out, nil
}
