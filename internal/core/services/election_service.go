package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/secureballot/secureballot/internal/core/domain"
	"github.com/secureballot/secureballot/internal/core/ports"
)

// Resource keys for the request-generation counters. Each fetch captures a
// monotonic sequence number at dispatch time; the response is applied only
// if it still belongs to the latest dispatched request for its key, so a
// slow earlier response can never overwrite a newer one.
const (
	genElections  = "elections"
	genDetails    = "details"
	genCandidates = "candidates"
	genResults    = "results"
	genStatistics = "statistics"
)

type electionService struct {
	api        ports.ElectionAPI
	resultsAPI ports.ResultsAPI
	log        *slog.Logger

	mu           sync.Mutex
	gens         map[string]uint64
	elections    []*domain.Election
	current      *domain.Election
	candidates   []*domain.Candidate
	results      *domain.ResultsSnapshot
	stats        *domain.ElectionStats
	votingStatus map[string]*domain.VotingStatus
}

func NewElectionService(api ports.ElectionAPI, resultsAPI ports.ResultsAPI, log *slog.Logger) ports.ElectionService {
	return &electionService{
		api:          api,
		resultsAPI:   resultsAPI,
		log:          log,
		gens:         make(map[string]uint64),
		votingStatus: make(map[string]*domain.VotingStatus),
	}
}

func (s *electionService) dispatch(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[key]++
	return s.gens[key]
}

// stale reports whether gen has been superseded for key. Must be called with
// s.mu held.
func (s *electionService) stale(key string, gen uint64) bool {
	return s.gens[key] != gen
}

func (s *electionService) FetchElections(ctx context.Context) ([]*domain.Election, error) {
	gen := s.dispatch(genElections)
	list, err := s.api.ListElections(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale(genElections, gen) {
		return list, domain.ErrStaleResponse
	}
	s.elections = list
	return list, nil
}

func (s *electionService) FetchElectionDetails(ctx context.Context, id string) (*domain.Election, error) {
	gen := s.dispatch(genDetails)
	election, err := s.api.GetElection(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale(genDetails, gen) {
		return election, domain.ErrStaleResponse
	}
	s.current = election
	return election, nil
}

func (s *electionService) FetchCandidates(ctx context.Context, electionID string) ([]*domain.Candidate, error) {
	gen := s.dispatch(genCandidates)
	candidates, err := s.api.GetCandidates(ctx, electionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale(genCandidates, gen) {
		return candidates, domain.ErrStaleResponse
	}
	s.candidates = candidates
	return candidates, nil
}

func (s *electionService) FetchResults(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error) {
	return s.fetchResults(ctx, electionID, s.resultsAPI.GetResults)
}

func (s *electionService) FetchRealTimeResults(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error) {
	return s.fetchResults(ctx, electionID, s.resultsAPI.GetLiveResults)
}

// Summary and live results land in the same displayed slot, so they share
// one generation key.
func (s *electionService) fetchResults(
	ctx context.Context,
	electionID string,
	fetch func(context.Context, string) (*domain.ResultsSnapshot, error),
) (*domain.ResultsSnapshot, error) {
	gen := s.dispatch(genResults)
	snapshot, err := fetch(ctx, electionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale(genResults, gen) {
		return snapshot, domain.ErrStaleResponse
	}
	s.results = snapshot
	return snapshot, nil
}

func (s *electionService) FetchStatistics(ctx context.Context, electionID string) (*domain.ElectionStats, error) {
	gen := s.dispatch(genStatistics)
	stats, err := s.api.GetStatistics(ctx, electionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale(genStatistics, gen) {
		return stats, domain.ErrStaleResponse
	}
	s.stats = stats
	return stats, nil
}

func (s *electionService) CheckVotingStatus(ctx context.Context, electionID string) (*domain.VotingStatus, error) {
	s.mu.Lock()
	if status, ok := s.votingStatus[electionID]; ok {
		s.mu.Unlock()
		return status, nil
	}
	s.mu.Unlock()

	status, err := s.api.GetVotingStatus(ctx, electionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A concurrent check may have filled the entry meanwhile; keep the
	// first stored value so callers observe a stable record.
	if cached, ok := s.votingStatus[electionID]; ok {
		return cached, nil
	}
	s.votingStatus[electionID] = status
	return status, nil
}

func (s *electionService) SelectByType(key domain.ElectionTypeKey) (*domain.Election, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match := ResolveElection(key, s.elections)
	if match == nil {
		return nil, domain.ErrNoMatchingType
	}
	s.current = match
	return match, nil
}

func (s *electionService) Elections() []*domain.Election {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elections
}

func (s *electionService) CurrentElection() *domain.Election {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *electionService) Candidates() []*domain.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.candidates
}

func (s *electionService) Results() *domain.ResultsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

func (s *electionService) Statistics() *domain.ElectionStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
