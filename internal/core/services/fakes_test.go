package services

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/secureballot/secureballot/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeAuthAPI struct {
	loginFn   func(ctx context.Context, voterID, password string) (*domain.UserProfile, string, error)
	restoreFn func(ctx context.Context, token string) (*domain.UserProfile, error)
	logoutFn  func(ctx context.Context) error

	logoutCalls atomic.Int64
}

func (f *fakeAuthAPI) Login(ctx context.Context, voterID, password string) (*domain.UserProfile, string, error) {
	return f.loginFn(ctx, voterID, password)
}

func (f *fakeAuthAPI) RestoreSession(ctx context.Context, token string) (*domain.UserProfile, error) {
	return f.restoreFn(ctx, token)
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.logoutCalls.Add(1)
	if f.logoutFn != nil {
		return f.logoutFn(ctx)
	}
	return nil
}

type fakeTokenCache struct {
	token   string
	loadErr error

	storeCalls atomic.Int64
	clearCalls atomic.Int64
}

func (f *fakeTokenCache) Load() (string, error) {
	return f.token, f.loadErr
}

func (f *fakeTokenCache) Store(token string) error {
	f.storeCalls.Add(1)
	f.token = token
	return nil
}

func (f *fakeTokenCache) Clear() error {
	f.clearCalls.Add(1)
	f.token = ""
	return nil
}

type fakeElectionAPI struct {
	listFn       func(ctx context.Context) ([]*domain.Election, error)
	getFn        func(ctx context.Context, id string) (*domain.Election, error)
	candidatesFn func(ctx context.Context, electionID string) ([]*domain.Candidate, error)
	statusFn     func(ctx context.Context, electionID string) (*domain.VotingStatus, error)
	statsFn      func(ctx context.Context, electionID string) (*domain.ElectionStats, error)

	listCalls   atomic.Int64
	statusCalls atomic.Int64
}

func (f *fakeElectionAPI) ListElections(ctx context.Context) ([]*domain.Election, error) {
	f.listCalls.Add(1)
	return f.listFn(ctx)
}

func (f *fakeElectionAPI) GetElection(ctx context.Context, id string) (*domain.Election, error) {
	return f.getFn(ctx, id)
}

func (f *fakeElectionAPI) GetCandidates(ctx context.Context, electionID string) ([]*domain.Candidate, error) {
	return f.candidatesFn(ctx, electionID)
}

func (f *fakeElectionAPI) GetVotingStatus(ctx context.Context, electionID string) (*domain.VotingStatus, error) {
	f.statusCalls.Add(1)
	return f.statusFn(ctx, electionID)
}

func (f *fakeElectionAPI) GetStatistics(ctx context.Context, electionID string) (*domain.ElectionStats, error) {
	return f.statsFn(ctx, electionID)
}

type fakeVotingAPI struct {
	eligibilityFn func(ctx context.Context, electionID string) (*domain.Eligibility, error)
	castFn        func(ctx context.Context, electionID, candidateID string) (*domain.VoteReceipt, error)
	verifyFn      func(ctx context.Context, receiptCode string) (*domain.ReceiptVerification, error)

	castCalls atomic.Int64
}

func (f *fakeVotingAPI) CheckEligibility(ctx context.Context, electionID string) (*domain.Eligibility, error) {
	return f.eligibilityFn(ctx, electionID)
}

func (f *fakeVotingAPI) CastVote(ctx context.Context, electionID, candidateID string) (*domain.VoteReceipt, error) {
	f.castCalls.Add(1)
	return f.castFn(ctx, electionID, candidateID)
}

func (f *fakeVotingAPI) VerifyReceipt(ctx context.Context, receiptCode string) (*domain.ReceiptVerification, error) {
	return f.verifyFn(ctx, receiptCode)
}

type fakeResultsAPI struct {
	resultsFn  func(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error)
	liveFn     func(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error)
	regionalFn func(ctx context.Context, electionID string) ([]domain.RegionalResult, error)
	historyFn  func(ctx context.Context, electionID string) ([]domain.ResultsPoint, error)

	resultsCalls atomic.Int64
	liveCalls    atomic.Int64
}

func (f *fakeResultsAPI) GetResults(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error) {
	f.resultsCalls.Add(1)
	return f.resultsFn(ctx, electionID)
}

func (f *fakeResultsAPI) GetLiveResults(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error) {
	f.liveCalls.Add(1)
	return f.liveFn(ctx, electionID)
}

func (f *fakeResultsAPI) GetRegionalResults(ctx context.Context, electionID string) ([]domain.RegionalResult, error) {
	return f.regionalFn(ctx, electionID)
}

func (f *fakeResultsAPI) GetHistoricalResults(ctx context.Context, electionID string) ([]domain.ResultsPoint, error) {
	return f.historyFn(ctx, electionID)
}
