package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
	ErrElectionNotFound = errors.New("election not found")
	ErrNoMatchingType   = errors.New("no election matches the requested type")
	ErrCandidateUnknown = errors.New("candidate does not belong to this election")
	ErrNotEligible      = errors.New("voter is not eligible for this election")
	ErrAlreadyVoted     = errors.New("voter has already voted in this election")
	ErrNotLoaded        = errors.New("voting state has not been loaded for this election")
	ErrVoteInFlight     = errors.New("a vote submission is already in progress")
	ErrReceiptNotFound  = errors.New("receipt not found")
	ErrStaleResponse    = errors.New("response superseded by a newer request")
	ErrPollingActive    = errors.New("auto-refresh is already running")
)

// APIError is a non-2xx response from the backend that is not covered by a
// more specific sentinel.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// RateLimitError is surfaced to the user with explicit retry guidance rather
// than as a silent failure.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %s", e.RetryAfter)
	}
	return "rate limited: retry later"
}
