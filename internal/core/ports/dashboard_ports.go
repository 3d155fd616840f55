package ports

import (
	"context"

	"github.com/secureballot/secureballot/internal/core/domain"
)

// ElectionOverview is the merged view model a page renders: the resolved
// election plus whichever data slices could be fetched. Slice errors are
// reported alongside the data instead of failing the whole view.
type ElectionOverview struct {
	Election     *domain.Election
	Candidates   []*domain.Candidate
	Results      *domain.ResultsSnapshot
	VotingStatus *domain.VotingStatus
	Stats        *domain.ElectionStats

	CandidatesErr error
	ResultsErr    error
	StatusErr     error
	StatsErr      error

	// Derived values.
	Turnout    float64
	Leader     *domain.CandidateResult
	TotalVotes int64
}

// DashboardService is the page-controller layer: it gates on the session,
// resolves the requested election type and fans out the data fetches.
type DashboardService interface {
	Overview(ctx context.Context, key domain.ElectionTypeKey) (*ElectionOverview, error)

	// FilterCandidates narrows a candidate list by a case-insensitive
	// search over name and party.
	FilterCandidates(candidates []*domain.Candidate, query string) []*domain.Candidate
}
