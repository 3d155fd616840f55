package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureballot/secureballot/internal/core/domain"
)

func TestDashboardOverview(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	ctx := context.Background()

	_, err := app.Session.Login(ctx, eligibleVoterID, eligiblePassword)
	require.NoError(t, err)

	overview, err := app.Dashboard.Overview(ctx, domain.TypePresidential)
	require.NoError(t, err)

	require.NotNil(t, overview.Election)
	assert.NoError(t, overview.CandidatesErr)
	assert.NoError(t, overview.ResultsErr)
	assert.NoError(t, overview.StatusErr)
	assert.NoError(t, overview.StatsErr)

	assert.NotEmpty(t, overview.Candidates)
	require.NotNil(t, overview.Results)
	require.NotNil(t, overview.VotingStatus)
	require.NotNil(t, overview.Leader)
	assert.Greater(t, overview.TotalVotes, int64(0))
}

func TestDashboardRequiresLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)

	_, err := app.Dashboard.Overview(context.Background(), domain.TypePresidential)
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestDashboardUnknownElectionType(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	ctx := context.Background()

	_, err := app.Session.Login(ctx, eligibleVoterID, eligiblePassword)
	require.NoError(t, err)

	_, err = app.Dashboard.Overview(ctx, domain.TypeLocal)
	assert.ErrorIs(t, err, domain.ErrNoMatchingType)
}

func TestResultsViews(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	ctx := context.Background()

	_, err := app.Session.Login(ctx, eligibleVoterID, eligiblePassword)
	require.NoError(t, err)
	_, err = app.Elections.FetchElections(ctx)
	require.NoError(t, err)
	election, err := app.Elections.SelectByType(domain.TypePresidential)
	require.NoError(t, err)

	snapshot, err := app.Results.Fetch(ctx, election.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, snapshot.Candidates)

	regions, err := app.Results.FetchRegional(ctx, election.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, regions)

	history, err := app.Results.FetchHistory(ctx, election.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, history)
}

func TestAdminLifecycleThroughClient(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	ctx := context.Background()

	_, err := app.Session.Login(ctx, eligibleVoterID, eligiblePassword)
	require.NoError(t, err)

	// 1. Create a draft election.
	created, err := app.Client.CreateElection(ctx, createLocalElectionInput())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, created.Status)

	// 2. Register a candidate.
	added, err := app.Client.AddCandidates(ctx, created.ID, localCandidateInput())
	require.NoError(t, err)
	require.Len(t, added, 1)

	// 3. Publish final results; the election flips to published.
	require.NoError(t, app.Client.PublishResults(ctx, created.ID, domain.PublishFinal))

	got, err := app.Elections.FetchElectionDetails(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPublished, got.Status)
}
