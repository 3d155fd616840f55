package ports

import (
	"context"

	"github.com/secureballot/secureballot/internal/core/domain"
)

type VotePhase string

const (
	PhaseNotChecked VotePhase = "not_checked"
	PhaseEligible   VotePhase = "eligible"
	PhaseIneligible VotePhase = "ineligible"
	PhaseVoted      VotePhase = "voted"
)

// VoteState is a snapshot of the per-election voting state machine.
type VoteState struct {
	ElectionID          string
	Phase               VotePhase
	IneligibleReason    string
	Candidates          []*domain.Candidate
	SelectedCandidateID string
	Receipt             *domain.VoteReceipt
	Status              *domain.VotingStatus
}

// VoteLoadReport carries per-slice outcomes of the load fan-out. A failed
// candidates or status fetch does not block the slices that succeeded.
type VoteLoadReport struct {
	State         VoteState
	CandidatesErr error
	StatusErr     error
}

type VoteService interface {
	// Load fetches eligibility, candidates and current voting status for the
	// election. The returned error is non-nil only when the eligibility
	// check itself failed; partial failures are reported per slice.
	Load(ctx context.Context, electionID string) (*VoteLoadReport, error)

	State(electionID string) VoteState
	SelectCandidate(electionID, candidateID string) error

	// CastVote submits a single user-initiated attempt. It is rejected
	// client-side, without a network call, while another attempt is in
	// flight or after the voter has already voted.
	CastVote(ctx context.Context, electionID, candidateID string) (*domain.VoteReceipt, error)

	VerifyReceipt(ctx context.Context, receiptCode string) (*domain.ReceiptVerification, error)
}
