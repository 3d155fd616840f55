package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureballot/secureballot/internal/core/domain"
	"github.com/secureballot/secureballot/internal/core/ports"
)

func dashboardFixture(t *testing.T) (*fakeAuthAPI, *fakeElectionAPI, *fakeResultsAPI, ports.SessionStore, ports.DashboardService) {
	t.Helper()

	auth := &fakeAuthAPI{
		loginFn: func(ctx context.Context, voterID, password string) (*domain.UserProfile, string, error) {
			return testUser(), "tok", nil
		},
		restoreFn: func(ctx context.Context, token string) (*domain.UserProfile, error) {
			return testUser(), nil
		},
	}
	electionAPI := &fakeElectionAPI{
		listFn: func(ctx context.Context) ([]*domain.Election, error) {
			return []*domain.Election{{
				ID:               "e1",
				Name:             "Presidential Election",
				ElectionType:     "Presidential Election",
				Status:           domain.StatusActive,
				RegisteredVoters: 1000,
				VotesCast:        250,
			}}, nil
		},
		candidatesFn: func(ctx context.Context, electionID string) ([]*domain.Candidate, error) {
			return []*domain.Candidate{
				{ID: "c1", FullName: "Funke Adeyemi", PartyCode: "UPP", PartyName: "Unity Party"},
				{ID: "c2", FullName: "Chidi Eze", PartyCode: "NDC", PartyName: "National Congress"},
			}, nil
		},
		statusFn: func(ctx context.Context, electionID string) (*domain.VotingStatus, error) {
			return &domain.VotingStatus{ElectionID: electionID, HasVoted: false}, nil
		},
		statsFn: func(ctx context.Context, electionID string) (*domain.ElectionStats, error) {
			return &domain.ElectionStats{ElectionID: electionID, RegisteredVoters: 1000, VotesCast: 250}, nil
		},
	}
	resultsAPI := &fakeResultsAPI{
		resultsFn: func(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error) {
			return &domain.ResultsSnapshot{
				ElectionID:     electionID,
				TotalVotesCast: 250,
				Turnout:        25,
				Candidates: []domain.CandidateResult{
					{CandidateID: "c1", FullName: "Funke Adeyemi", Votes: 150},
					{CandidateID: "c2", FullName: "Chidi Eze", Votes: 100},
				},
			}, nil
		},
	}

	log := discardLogger()
	session := NewSessionStore(auth, &fakeTokenCache{}, log)
	elections := NewElectionService(electionAPI, resultsAPI, log)
	dashboard := NewDashboardService(session, elections, log)
	return auth, electionAPI, resultsAPI, session, dashboard
}

func TestOverviewRequiresAuthentication(t *testing.T) {
	_, _, _, _, dashboard := dashboardFixture(t)

	_, err := dashboard.Overview(context.Background(), domain.TypePresidential)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestOverviewHappyPath(t *testing.T) {
	_, _, _, session, dashboard := dashboardFixture(t)
	_, err := session.Login(context.Background(), "VIN10000000001", "password1")
	require.NoError(t, err)

	overview, err := dashboard.Overview(context.Background(), domain.TypePresidential)
	require.NoError(t, err)

	assert.Equal(t, "e1", overview.Election.ID)
	assert.Len(t, overview.Candidates, 2)
	require.NotNil(t, overview.Results)
	require.NotNil(t, overview.VotingStatus)
	require.NotNil(t, overview.Stats)

	assert.Equal(t, int64(250), overview.TotalVotes)
	assert.InDelta(t, 25, overview.Turnout, 0.01)
	require.NotNil(t, overview.Leader)
	assert.Equal(t, "c1", overview.Leader.CandidateID)
}

func TestOverviewUnknownType(t *testing.T) {
	_, _, _, session, dashboard := dashboardFixture(t)
	_, err := session.Login(context.Background(), "VIN10000000001", "password1")
	require.NoError(t, err)

	_, err = dashboard.Overview(context.Background(), domain.TypeLocal)
	assert.ErrorIs(t, err, domain.ErrNoMatchingType)
}

func TestOverviewDegradesPerSlice(t *testing.T) {
	_, _, resultsAPI, session, dashboard := dashboardFixture(t)
	resultsAPI.resultsFn = func(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error) {
		return nil, errors.New("results backend down")
	}
	_, err := session.Login(context.Background(), "VIN10000000001", "password1")
	require.NoError(t, err)

	overview, err := dashboard.Overview(context.Background(), domain.TypePresidential)
	require.NoError(t, err, "one failed slice must not fail the page")

	assert.Error(t, overview.ResultsErr)
	assert.Nil(t, overview.Results)
	assert.Len(t, overview.Candidates, 2)
	require.NotNil(t, overview.Stats)

	// Derived values fall back to the election's own counters.
	assert.Equal(t, int64(250), overview.TotalVotes)
	assert.InDelta(t, 25, overview.Turnout, 0.01)
	assert.Nil(t, overview.Leader)
}

func TestOverviewExpiredSessionLogsOut(t *testing.T) {
	auth, electionAPI, _, session, dashboard := dashboardFixture(t)
	electionAPI.listFn = func(ctx context.Context) ([]*domain.Election, error) {
		return nil, domain.ErrSessionExpired
	}
	_, err := session.Login(context.Background(), "VIN10000000001", "password1")
	require.NoError(t, err)

	_, err = dashboard.Overview(context.Background(), domain.TypePresidential)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	assert.False(t, session.Session().Authenticated)
	assert.Equal(t, int64(1), auth.logoutCalls.Load())
}

func TestOverviewFetchFailureSetsSharedError(t *testing.T) {
	_, electionAPI, _, session, dashboard := dashboardFixture(t)
	electionAPI.listFn = func(ctx context.Context) ([]*domain.Election, error) {
		return nil, errors.New("listing failed")
	}
	_, err := session.Login(context.Background(), "VIN10000000001", "password1")
	require.NoError(t, err)

	_, err = dashboard.Overview(context.Background(), domain.TypePresidential)
	require.Error(t, err)
	assert.Equal(t, "listing failed", session.LastError())
}

func TestFilterCandidates(t *testing.T) {
	_, _, _, _, dashboard := dashboardFixture(t)
	candidates := []*domain.Candidate{
		{ID: "c1", FullName: "Funke Adeyemi", PartyCode: "UPP", PartyName: "Unity Party"},
		{ID: "c2", FullName: "Chidi Eze", PartyCode: "NDC", PartyName: "National Congress"},
		{ID: "c3", FullName: "Bola Adekunle", PartyCode: "GRA", PartyName: "Green Alliance"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"empty query returns all", "", []string{"c1", "c2", "c3"}},
		{"match on name", "ade", []string{"c1", "c3"}},
		{"match on party name", "congress", []string{"c2"}},
		{"match on party code", "gra", []string{"c3"}},
		{"case insensitive", "FUNKE", []string{"c1"}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dashboard.FilterCandidates(candidates, tt.query)
			var ids []string
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
