package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/secureballot/secureballot/internal/core/domain"
	"github.com/secureballot/secureballot/internal/core/ports"
	"github.com/secureballot/secureballot/internal/lib/logger/sl"
)

type dashboardService struct {
	session   ports.SessionStore
	elections ports.ElectionService
	log       *slog.Logger
}

func NewDashboardService(session ports.SessionStore, elections ports.ElectionService, log *slog.Logger) ports.DashboardService {
	return &dashboardService{
		session:   session,
		elections: elections,
		log:       log,
	}
}

// Overview runs the page fan-out: gate on the session, resolve the requested
// election type against a fresh list, then fetch candidates, results, voting
// status and statistics in parallel. One failed slice degrades that slice
// only; the view model carries whatever did succeed.
func (s *dashboardService) Overview(ctx context.Context, key domain.ElectionTypeKey) (*ports.ElectionOverview, error) {
	if !s.session.Session().Initialized {
		if err := s.session.Initialize(ctx); err != nil {
			return nil, err
		}
	}
	if !s.session.Session().Authenticated {
		return nil, domain.ErrNotAuthenticated
	}

	if _, err := s.elections.FetchElections(ctx); err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			if lerr := s.session.Logout(ctx); lerr != nil {
				s.log.Warn("logout after expired session failed", sl.Err(lerr))
			}
			return nil, domain.ErrSessionExpired
		}
		s.session.SetError(err.Error())
		return nil, err
	}

	election, err := s.elections.SelectByType(key)
	if err != nil {
		return nil, err
	}

	overview := &ports.ElectionOverview{Election: election}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		overview.Candidates, overview.CandidatesErr = s.elections.FetchCandidates(ctx, election.ID)
	}()
	go func() {
		defer wg.Done()
		overview.Results, overview.ResultsErr = s.elections.FetchResults(ctx, election.ID)
	}()
	go func() {
		defer wg.Done()
		overview.VotingStatus, overview.StatusErr = s.elections.CheckVotingStatus(ctx, election.ID)
	}()
	go func() {
		defer wg.Done()
		overview.Stats, overview.StatsErr = s.elections.FetchStatistics(ctx, election.ID)
	}()
	wg.Wait()

	for name, sliceErr := range map[string]error{
		"candidates": overview.CandidatesErr,
		"results":    overview.ResultsErr,
		"status":     overview.StatusErr,
		"statistics": overview.StatsErr,
	} {
		if sliceErr != nil && !errors.Is(sliceErr, domain.ErrStaleResponse) {
			s.log.Warn("overview slice failed",
				slog.String("slice", name),
				slog.String("election_id", election.ID),
				sl.Err(sliceErr))
		}
	}

	s.derive(overview)
	return overview, nil
}

func (s *dashboardService) derive(overview *ports.ElectionOverview) {
	if overview.Results != nil {
		overview.TotalVotes = overview.Results.TotalVotesCast
		overview.Turnout = overview.Results.Turnout
		for i := range overview.Results.Candidates {
			c := &overview.Results.Candidates[i]
			if overview.Leader == nil || c.Votes > overview.Leader.Votes {
				overview.Leader = c
			}
		}
		return
	}
	// No results slice; fall back to the election's own counters.
	if overview.Election != nil {
		overview.TotalVotes = overview.Election.VotesCast
		if overview.Election.RegisteredVoters > 0 {
			overview.Turnout = float64(overview.Election.VotesCast) /
				float64(overview.Election.RegisteredVoters) * 100
		}
	}
}

func (s *dashboardService) FilterCandidates(candidates []*domain.Candidate, query string) []*domain.Candidate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return candidates
	}
	var filtered []*domain.Candidate
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.FullName), q) ||
			strings.Contains(strings.ToLower(c.PartyName), q) ||
			strings.Contains(strings.ToLower(c.PartyCode), q) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
