package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureballot/secureballot/internal/core/domain"
	"github.com/secureballot/secureballot/internal/core/ports"
)

func TestVotingJourney(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	ctx := context.Background()

	_, err := app.Session.Login(ctx, eligibleVoterID, eligiblePassword)
	require.NoError(t, err)

	// 1. Resolve the presidential election from the fetched list.
	_, err = app.Elections.FetchElections(ctx)
	require.NoError(t, err)
	election, err := app.Elections.SelectByType(domain.TypePresidential)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, election.Status)

	// 2. Load the ballot: eligible, with candidates.
	report, err := app.Votes.Load(ctx, election.ID)
	require.NoError(t, err)
	require.NoError(t, report.CandidatesErr)
	require.NoError(t, report.StatusErr)
	assert.Equal(t, ports.PhaseEligible, report.State.Phase)
	require.NotEmpty(t, report.State.Candidates)

	// 3. Cast a vote and get a receipt.
	candidateID := report.State.Candidates[0].ID
	require.NoError(t, app.Votes.SelectCandidate(election.ID, candidateID))
	receipt, err := app.Votes.CastVote(ctx, election.ID, candidateID)
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.ReceiptCode)

	state := app.Votes.State(election.ID)
	assert.Equal(t, ports.PhaseVoted, state.Phase)

	// 4. The receipt verifies against the backend.
	verification, err := app.Votes.VerifyReceipt(ctx, receipt.ReceiptCode)
	require.NoError(t, err)
	assert.True(t, verification.IsValid)

	// 5. A second cast is rejected locally.
	_, err = app.Votes.CastVote(ctx, election.ID, candidateID)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)

	// 6. The vote shows up in the results.
	snapshot, err := app.Results.Fetch(ctx, election.ID)
	require.NoError(t, err)
	assert.Greater(t, snapshot.TotalVotesCast, int64(0))
}

func TestIneligibleVoterCannotVote(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	ctx := context.Background()

	_, err := app.Session.Login(ctx, ineligibleVoterID, ineligiblePass)
	require.NoError(t, err)

	_, err = app.Elections.FetchElections(ctx)
	require.NoError(t, err)
	election, err := app.Elections.SelectByType(domain.TypePresidential)
	require.NoError(t, err)

	report, err := app.Votes.Load(ctx, election.ID)
	require.NoError(t, err)
	assert.Equal(t, ports.PhaseIneligible, report.State.Phase)
	assert.NotEmpty(t, report.State.IneligibleReason)

	_, err = app.Votes.CastVote(ctx, election.ID, report.State.Candidates[0].ID)
	assert.ErrorIs(t, err, domain.ErrNotEligible)
}

func TestVotedStateSurvivesReload(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	ctx := context.Background()

	_, err := app.Session.Login(ctx, eligibleVoterID, eligiblePassword)
	require.NoError(t, err)
	_, err = app.Elections.FetchElections(ctx)
	require.NoError(t, err)
	election, err := app.Elections.SelectByType(domain.TypeGubernatorial)
	require.NoError(t, err)

	report, err := app.Votes.Load(ctx, election.ID)
	require.NoError(t, err)
	_, err = app.Votes.CastVote(ctx, election.ID, report.State.Candidates[0].ID)
	require.NoError(t, err)

	// A fresh client sees the vote through the backend's voting status.
	app.wireServices()
	require.NoError(t, app.Session.Initialize(ctx))
	report, err = app.Votes.Load(ctx, election.ID)
	require.NoError(t, err)
	assert.Equal(t, ports.PhaseVoted, report.State.Phase)
	require.NotNil(t, report.State.Status)
	assert.True(t, report.State.Status.HasVoted)
}

func TestVerifyUnknownReceipt(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	ctx := context.Background()

	_, err := app.Session.Login(ctx, eligibleVoterID, eligiblePassword)
	require.NoError(t, err)

	_, err = app.Votes.VerifyReceipt(ctx, "no-such-receipt")
	assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
}
