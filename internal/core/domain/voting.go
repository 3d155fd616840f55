package domain

import "time"

// VotingStatus records whether the current voter has voted in an election,
// and for whom. Entries are created lazily on first check and kept for the
// rest of the session.
type VotingStatus struct {
	ElectionID     string `json:"election_id"`
	HasVoted       bool   `json:"has_voted"`
	CandidateID    string `json:"candidate_id,omitempty"`
	CandidateName  string `json:"candidate_name,omitempty"`
	CandidateParty string `json:"candidate_party,omitempty"`
}

// Eligibility is the server's verdict on whether the current voter may vote
// in an election, independent of whether they already have.
type Eligibility struct {
	ElectionID string `json:"election_id"`
	Eligible   bool   `json:"eligible"`
	Reason     string `json:"reason,omitempty"`
}

// VoteReceipt is produced exactly once per successful cast. The receipt code
// is an opaque token usable for later verification without revealing the
// vote contents.
type VoteReceipt struct {
	ReceiptCode string    `json:"receipt_code"`
	ElectionID  string    `json:"election_id"`
	CandidateID string    `json:"candidate_id"`
	CastAt      time.Time `json:"cast_at"`
}

type ReceiptVerification struct {
	ReceiptCode string    `json:"receipt_code"`
	IsValid     bool      `json:"is_valid"`
	VerifiedAt  time.Time `json:"verified_at"`
}
