package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/secureballot/secureballot/internal/core/domain"
	"github.com/secureballot/secureballot/internal/core/ports"
	"github.com/secureballot/secureballot/internal/lib/logger/sl"
)

type voteState struct {
	phase      ports.VotePhase
	reason     string
	candidates []*domain.Candidate
	selected   string
	receipt    *domain.VoteReceipt
	status     *domain.VotingStatus
	casting    bool
}

type voteService struct {
	voting    ports.VotingAPI
	elections ports.ElectionAPI
	log       *slog.Logger

	mu     sync.Mutex
	states map[string]*voteState
}

func NewVoteService(voting ports.VotingAPI, elections ports.ElectionAPI, log *slog.Logger) ports.VoteService {
	return &voteService{
		voting:    voting,
		elections: elections,
		log:       log,
		states:    make(map[string]*voteState),
	}
}

func (s *voteService) Load(ctx context.Context, electionID string) (*ports.VoteLoadReport, error) {
	var (
		wg sync.WaitGroup

		eligibility *domain.Eligibility
		eligErr     error
		candidates  []*domain.Candidate
		candErr     error
		status      *domain.VotingStatus
		statusErr   error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		eligibility, eligErr = s.voting.CheckEligibility(ctx, electionID)
	}()
	go func() {
		defer wg.Done()
		candidates, candErr = s.elections.GetCandidates(ctx, electionID)
	}()
	go func() {
		defer wg.Done()
		status, statusErr = s.elections.GetVotingStatus(ctx, electionID)
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(electionID)
	if candErr == nil {
		st.candidates = candidates
	}
	if statusErr == nil {
		st.status = status
	}

	if eligErr != nil {
		// Without an eligibility verdict the phase cannot advance, but an
		// already-voted election stays voted.
		return s.reportLocked(electionID, candErr, statusErr), eligErr
	}

	if st.phase != ports.PhaseVoted {
		switch {
		case status != nil && status.HasVoted:
			st.phase = ports.PhaseVoted
		case !eligibility.Eligible:
			st.phase = ports.PhaseIneligible
			st.reason = eligibility.Reason
		default:
			st.phase = ports.PhaseEligible
			st.reason = ""
		}
	}

	return s.reportLocked(electionID, candErr, statusErr), nil
}

func (s *voteService) State(electionID string) ports.VoteState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(electionID)
}

func (s *voteService) SelectCandidate(electionID, candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[electionID]
	if !ok {
		return domain.ErrNotLoaded
	}
	switch st.phase {
	case ports.PhaseVoted:
		return domain.ErrAlreadyVoted
	case ports.PhaseIneligible:
		return domain.ErrNotEligible
	case ports.PhaseNotChecked:
		return domain.ErrNotLoaded
	}
	if !candidateKnown(st.candidates, candidateID) {
		return domain.ErrCandidateUnknown
	}
	st.selected = candidateID
	return nil
}

func (s *voteService) CastVote(ctx context.Context, electionID, candidateID string) (*domain.VoteReceipt, error) {
	s.mu.Lock()
	st, ok := s.states[electionID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNotLoaded
	}
	if st.casting {
		s.mu.Unlock()
		return nil, domain.ErrVoteInFlight
	}
	switch st.phase {
	case ports.PhaseVoted:
		s.mu.Unlock()
		return nil, domain.ErrAlreadyVoted
	case ports.PhaseIneligible:
		s.mu.Unlock()
		return nil, domain.ErrNotEligible
	case ports.PhaseNotChecked:
		s.mu.Unlock()
		return nil, domain.ErrNotLoaded
	}
	if !candidateKnown(st.candidates, candidateID) {
		s.mu.Unlock()
		return nil, domain.ErrCandidateUnknown
	}
	st.casting = true
	s.mu.Unlock()

	receipt, err := s.voting.CastVote(ctx, electionID, candidateID)

	s.mu.Lock()
	defer s.mu.Unlock()
	st.casting = false
	if err != nil {
		// The voter stays eligible and may retry by hand; nothing retries
		// automatically.
		s.log.Warn("vote cast failed",
			slog.String("election_id", electionID), sl.Err(err))
		return nil, err
	}

	st.phase = ports.PhaseVoted
	st.selected = candidateID
	st.receipt = receipt
	st.status = &domain.VotingStatus{
		ElectionID:  electionID,
		HasVoted:    true,
		CandidateID: candidateID,
	}
	if name, party, ok := candidateNameParty(st.candidates, candidateID); ok {
		st.status.CandidateName = name
		st.status.CandidateParty = party
	}
	s.log.Info("vote cast",
		slog.String("election_id", electionID),
		slog.String("receipt_code", receipt.ReceiptCode))
	return receipt, nil
}

func (s *voteService) VerifyReceipt(ctx context.Context, receiptCode string) (*domain.ReceiptVerification, error) {
	verification, err := s.voting.VerifyReceipt(ctx, receiptCode)
	if err != nil {
		return nil, err
	}
	if verification.VerifiedAt.IsZero() {
		verification.VerifiedAt = time.Now()
	}
	return verification, nil
}

// state returns the lazily created entry for electionID. Must be called with
// s.mu held.
func (s *voteService) state(electionID string) *voteState {
	st, ok := s.states[electionID]
	if !ok {
		st = &voteState{phase: ports.PhaseNotChecked}
		s.states[electionID] = st
	}
	return st
}

func (s *voteService) snapshotLocked(electionID string) ports.VoteState {
	st, ok := s.states[electionID]
	if !ok {
		return ports.VoteState{ElectionID: electionID, Phase: ports.PhaseNotChecked}
	}
	return ports.VoteState{
		ElectionID:          electionID,
		Phase:               st.phase,
		IneligibleReason:    st.reason,
		Candidates:          st.candidates,
		SelectedCandidateID: st.selected,
		Receipt:             st.receipt,
		Status:              st.status,
	}
}

func (s *voteService) reportLocked(electionID string, candErr, statusErr error) *ports.VoteLoadReport {
	return &ports.VoteLoadReport{
		State:         s.snapshotLocked(electionID),
		CandidatesErr: candErr,
		StatusErr:     statusErr,
	}
}

func candidateKnown(candidates []*domain.Candidate, candidateID string) bool {
	// Candidate lists can legitimately be absent after a partial load; the
	// server remains the authority in that case.
	if len(candidates) == 0 {
		return true
	}
	for _, c := range candidates {
		if c.ID == candidateID {
			return true
		}
	}
	return false
}

func candidateNameParty(candidates []*domain.Candidate, candidateID string) (string, string, bool) {
	for _, c := range candidates {
		if c.ID == candidateID {
			return c.FullName, c.PartyName, true
		}
	}
	return "", "", false
}
