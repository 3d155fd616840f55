package ports

import (
	"context"

	"github.com/secureballot/secureballot/internal/core/domain"
)

// The API ports mirror the backend contract. The orchestration layer never
// talks HTTP directly; it goes through these interfaces so tests can swap in
// counting fakes.

type AuthAPI interface {
	Login(ctx context.Context, voterID, password string) (*domain.UserProfile, string, error)
	RestoreSession(ctx context.Context, token string) (*domain.UserProfile, error)
	Logout(ctx context.Context) error
}

type ElectionAPI interface {
	ListElections(ctx context.Context) ([]*domain.Election, error)
	GetElection(ctx context.Context, id string) (*domain.Election, error)
	GetCandidates(ctx context.Context, electionID string) ([]*domain.Candidate, error)
	GetVotingStatus(ctx context.Context, electionID string) (*domain.VotingStatus, error)
	GetStatistics(ctx context.Context, electionID string) (*domain.ElectionStats, error)
}

type VotingAPI interface {
	CheckEligibility(ctx context.Context, electionID string) (*domain.Eligibility, error)
	CastVote(ctx context.Context, electionID, candidateID string) (*domain.VoteReceipt, error)
	VerifyReceipt(ctx context.Context, receiptCode string) (*domain.ReceiptVerification, error)
}

type ResultsAPI interface {
	GetResults(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error)
	GetLiveResults(ctx context.Context, electionID string) (*domain.ResultsSnapshot, error)
	GetRegionalResults(ctx context.Context, electionID string) ([]domain.RegionalResult, error)
	GetHistoricalResults(ctx context.Context, electionID string) ([]domain.ResultsPoint, error)
}

type ProfileAPI interface {
	GetProfile(ctx context.Context) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error)
	GetPollingUnit(ctx context.Context) (*domain.PollingUnit, error)
}

type CreateElectionInput struct {
	Name         string
	ElectionType string
	StartDate    string
	EndDate      string
}

type CandidateInput struct {
	FullName  string
	PartyCode string
	PartyName string
	Bio       string
	Manifesto string
}

type AdminAPI interface {
	CreateElection(ctx context.Context, input CreateElectionInput) (*domain.Election, error)
	AddCandidates(ctx context.Context, electionID string, input []CandidateInput) ([]*domain.Candidate, error)
	PublishResults(ctx context.Context, electionID string, level domain.PublishLevel) error
}
