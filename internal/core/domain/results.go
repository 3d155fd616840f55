package domain

import "time"

// ResultsSnapshot is a point-in-time read of aggregated results. Each fetch
// replaces the prior snapshot wholesale; snapshots are never diffed or merged.
type ResultsSnapshot struct {
	ElectionID     string            `json:"election_id"`
	TotalVotesCast int64             `json:"total_votes_cast"`
	ValidVotes     int64             `json:"valid_votes"`
	InvalidVotes   int64             `json:"invalid_votes"`
	Turnout        float64           `json:"turnout_percentage"`
	Regions        []RegionalResult  `json:"regional_breakdown"`
	Candidates     []CandidateResult `json:"candidate_results"`
	FetchedAt      time.Time         `json:"fetched_at"`
}

type RegionalResult struct {
	Region       string  `json:"region"`
	VotesCast    int64   `json:"votes_cast"`
	Turnout      float64 `json:"turnout_percentage"`
	LeadingParty string  `json:"leading_party,omitempty"`
}

type CandidateResult struct {
	CandidateID string  `json:"candidate_id"`
	FullName    string  `json:"full_name"`
	PartyCode   string  `json:"party_code"`
	Votes       int64   `json:"votes"`
	Percentage  float64 `json:"percentage"`
}

// ResultsPoint is one sample in the historical time series for an election.
type ResultsPoint struct {
	Timestamp time.Time `json:"timestamp"`
	VotesCast int64     `json:"votes_cast"`
	Turnout   float64   `json:"turnout_percentage"`
}

// PublishLevel selects how results are published on the admin surface.
type PublishLevel string

const (
	PublishPreliminary PublishLevel = "preliminary"
	PublishFinal       PublishLevel = "final"
)
