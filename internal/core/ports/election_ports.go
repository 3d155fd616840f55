package ports

import (
	"context"

	"github.com/secureballot/secureballot/internal/core/domain"
)

// ElectionService fetches and holds election data for one page-sized scope.
// Fetches replace held state wholesale; a response belonging to a superseded
// request is discarded instead of overwriting newer data.
type ElectionService interface {
	FetchElections(ctx context.Context) ([]*domain.Election, error)
	FetchElectionDetails(ctx context.Context, id string) (*domain.Election, error)
	FetchCandidates(ctx context.Context, electionID string) ([]*domain.Candidate, error)
	FetchResults(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error)
	FetchRealTimeResults(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error)
	FetchStatistics(ctx context.Context, electionID string) (*domain.ElectionStats, error)

	// CheckVotingStatus memoizes per election id: a cached entry is returned
	// without a network call.
	CheckVotingStatus(ctx context.Context, electionID string) (*domain.VotingStatus, error)

	// SelectByType resolves the current election from the cached list using
	// the fuzzy type-key matching rules.
	SelectByType(key domain.ElectionTypeKey) (*domain.Election, error)

	Elections() []*domain.Election
	CurrentElection() *domain.Election
	Candidates() []*domain.Candidate
	Results() *domain.ResultsSnapshot
	Statistics() *domain.ElectionStats
}
