// Package memory is the in-memory data store behind the stub backend used
// for local development and integration tests. All election data the real
// platform keeps server-side lives here.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/secureballot/secureballot/internal/core/domain"
)

// Voter is a stub-side account: credentials plus the voter's profile.
type Voter struct {
	VoterID          string
	Password         string
	Profile          domain.UserProfile
	PollingUnit      *domain.PollingUnit
	IneligibleReason string
}

type Store struct {
	mu sync.Mutex

	voters     map[string]*Voter
	elections  map[string]*domain.Election
	order      []string
	candidates map[string][]*domain.Candidate
	votes      map[string]map[string]string
	receipts   map[string]*domain.VoteReceipt
	regions    map[string][]domain.RegionalResult
	history    map[string][]domain.ResultsPoint
	published  map[string]domain.PublishLevel
}

func NewStore() *Store {
	return &Store{
		voters:     make(map[string]*Voter),
		elections:  make(map[string]*domain.Election),
		candidates: make(map[string][]*domain.Candidate),
		votes:      make(map[string]map[string]string),
		receipts:   make(map[string]*domain.VoteReceipt),
		regions:    make(map[string][]domain.RegionalResult),
		history:    make(map[string][]domain.ResultsPoint),
		published:  make(map[string]domain.PublishLevel),
	}
}

func (s *Store) AddVoter(v *Voter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.voters[v.VoterID] = v
}

func (s *Store) Authenticate(voterID, password string) (*domain.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.voters[voterID]
	if !ok || v.Password != password {
		return nil, false
	}
	now := time.Now()
	v.Profile.LastLoginAt = &now
	profile := v.Profile
	return &profile, true
}

func (s *Store) GetVoter(voterID string) (*Voter, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.voters[voterID]
	return v, ok
}

func (s *Store) UpdateProfile(voterID string, update domain.ProfileUpdate) (*domain.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.voters[voterID]
	if !ok {
		return nil, false
	}
	if update.Email != nil {
		v.Profile.Email = *update.Email
	}
	if update.PhoneNumber != nil {
		v.Profile.PhoneNumber = *update.PhoneNumber
	}
	profile := v.Profile
	return &profile, true
}

func (s *Store) AddElection(e *domain.Election) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addElectionLocked(e)
}

func (s *Store) addElectionLocked(e *domain.Election) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	s.elections[e.ID] = e
	s.order = append(s.order, e.ID)
	if s.votes[e.ID] == nil {
		s.votes[e.ID] = make(map[string]string)
	}
}

func (s *Store) CreateElection(name, electionType string, start, end time.Time) *domain.Election {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := &domain.Election{
		ID:           uuid.NewString(),
		Name:         name,
		ElectionType: electionType,
		Status:       domain.StatusDraft,
		StartDate:    start,
		EndDate:      end,
	}
	s.addElectionLocked(e)
	return e
}

func (s *Store) ListElections() []*domain.Election {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*domain.Election, 0, len(s.order))
	for _, id := range s.order {
		e := *s.elections[id]
		e.VotesCast = int64(len(s.votes[id]))
		list = append(list, &e)
	}
	return list
}

func (s *Store) GetElection(id string) (*domain.Election, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.elections[id]
	if !ok {
		return nil, false
	}
	copied := *e
	copied.VotesCast = int64(len(s.votes[id]))
	return &copied, true
}

func (s *Store) AddCandidate(electionID string, c *domain.Candidate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elections[electionID]; !ok {
		return false
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.ElectionID = electionID
	s.candidates[electionID] = append(s.candidates[electionID], c)
	return true
}

// Candidates returns the election's candidates with vote counts and
// percentages recomputed from the current ballots.
func (s *Store) Candidates(electionID string) ([]*domain.Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elections[electionID]; !ok {
		return nil, false
	}
	return s.candidatesLocked(electionID), true
}

func (s *Store) candidatesLocked(electionID string) []*domain.Candidate {
	counts := make(map[string]int64)
	for _, candidateID := range s.votes[electionID] {
		counts[candidateID]++
	}
	var total int64
	base := s.candidates[electionID]
	out := make([]*domain.Candidate, 0, len(base))
	for _, c := range base {
		copied := *c
		copied.Votes += counts[c.ID]
		total += copied.Votes
		out = append(out, &copied)
	}
	for _, c := range out {
		if total > 0 {
			c.Percentage = float64(c.Votes) / float64(total) * 100
		}
	}
	return out
}

func (s *Store) VotingStatus(voterID, electionID string) (*domain.VotingStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elections[electionID]; !ok {
		return nil, false
	}
	status := &domain.VotingStatus{ElectionID: electionID}
	candidateID, voted := s.votes[electionID][voterID]
	if !voted {
		return status, true
	}
	status.HasVoted = true
	status.CandidateID = candidateID
	for _, c := range s.candidates[electionID] {
		if c.ID == candidateID {
			status.CandidateName = c.FullName
			status.CandidateParty = c.PartyName
			break
		}
	}
	return status, true
}

func (s *Store) Eligibility(voterID, electionID string) (*domain.Eligibility, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.elections[electionID]
	if !ok {
		return nil, false
	}
	out := &domain.Eligibility{ElectionID: electionID, Eligible: true}
	if v, ok := s.voters[voterID]; ok && v.IneligibleReason != "" {
		out.Eligible = false
		out.Reason = v.IneligibleReason
		return out, true
	}
	if e.Status != domain.StatusActive {
		out.Eligible = false
		out.Reason = "election is not open for voting"
	}
	return out, true
}

// CastVote records a ballot and mints a receipt. The second return value is
// false when the election is unknown; alreadyVoted reports a duplicate.
func (s *Store) CastVote(voterID, electionID, candidateID string) (receipt *domain.VoteReceipt, found, alreadyVoted, validCandidate bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elections[electionID]; !ok {
		return nil, false, false, false
	}
	if _, voted := s.votes[electionID][voterID]; voted {
		return nil, true, true, false
	}
	known := false
	for _, c := range s.candidates[electionID] {
		if c.ID == candidateID {
			known = true
			break
		}
	}
	if !known {
		return nil, true, false, false
	}

	s.votes[electionID][voterID] = candidateID
	receipt = &domain.VoteReceipt{
		ReceiptCode: uuid.NewString(),
		ElectionID:  electionID,
		CandidateID: candidateID,
		CastAt:      time.Now(),
	}
	s.receipts[receipt.ReceiptCode] = receipt
	return receipt, true, false, true
}

func (s *Store) Receipt(code string) (*domain.VoteReceipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.receipts[code]
	return r, ok
}

func (s *Store) Results(electionID string) (*domain.ResultsSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.elections[electionID]
	if !ok {
		return nil, false
	}

	candidates := s.candidatesLocked(electionID)
	snapshot := &domain.ResultsSnapshot{
		ElectionID: electionID,
		Regions:    s.regions[electionID],
		FetchedAt:  time.Now(),
	}
	for _, c := range candidates {
		snapshot.TotalVotesCast += c.Votes
		snapshot.Candidates = append(snapshot.Candidates, domain.CandidateResult{
			CandidateID: c.ID,
			FullName:    c.FullName,
			PartyCode:   c.PartyCode,
			Votes:       c.Votes,
			Percentage:  c.Percentage,
		})
	}
	sort.Slice(snapshot.Candidates, func(i, j int) bool {
		return snapshot.Candidates[i].Votes > snapshot.Candidates[j].Votes
	})
	snapshot.ValidVotes = snapshot.TotalVotesCast
	if e.RegisteredVoters > 0 {
		snapshot.Turnout = float64(snapshot.TotalVotesCast) /
			float64(e.RegisteredVoters) * 100
	}
	return snapshot, true
}

func (s *Store) RegionalResults(electionID string) ([]domain.RegionalResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elections[electionID]; !ok {
		return nil, false
	}
	return s.regions[electionID], true
}

func (s *Store) SetRegionalResults(electionID string, regions []domain.RegionalResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions[electionID] = regions
}

func (s *Store) HistoricalResults(electionID string) ([]domain.ResultsPoint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elections[electionID]; !ok {
		return nil, false
	}
	return s.history[electionID], true
}

func (s *Store) SetHistoricalResults(electionID string, points []domain.ResultsPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history[electionID] = points
}

func (s *Store) PublishResults(electionID string, level domain.PublishLevel) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.elections[electionID]
	if !ok {
		return false
	}
	s.published[electionID] = level
	if level == domain.PublishFinal {
		e.Status = domain.StatusPublished
	}
	return true
}
