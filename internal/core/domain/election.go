package domain

import "time"

// ElectionTypeKey is the short slug used in routes and CLI arguments,
// distinct from the free-text type string the API returns for an election.
type ElectionTypeKey string

const (
	TypePresidential  ElectionTypeKey = "presidential"
	TypeGubernatorial ElectionTypeKey = "gubernatorial"
	TypeHouseOfReps   ElectionTypeKey = "house-of-reps"
	TypeSenatorial    ElectionTypeKey = "senatorial"
	TypeLocal         ElectionTypeKey = "local"
)

type ElectionStatus string

const (
	StatusDraft     ElectionStatus = "draft"
	StatusScheduled ElectionStatus = "scheduled"
	StatusActive    ElectionStatus = "active"
	StatusCompleted ElectionStatus = "completed"
	StatusPublished ElectionStatus = "published"
	StatusCancelled ElectionStatus = "cancelled"
)

// Election is a read-only mirror of server state; it is replaced wholesale
// on every fetch, never mutated in place.
type Election struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	ElectionType     string         `json:"election_type"`
	Status           ElectionStatus `json:"status"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	RegisteredVoters int64          `json:"registered_voters_count"`
	VotesCast        int64          `json:"votes_cast_count"`
}

type Candidate struct {
	ID         string  `json:"id"`
	ElectionID string  `json:"election_id"`
	FullName   string  `json:"full_name"`
	PartyCode  string  `json:"party_code"`
	PartyName  string  `json:"party_name"`
	PhotoURL   string  `json:"photo_url,omitempty"`
	Bio        string  `json:"bio,omitempty"`
	Manifesto  string  `json:"manifesto,omitempty"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

// ElectionStats is the lightweight statistics slice fetched alongside an
// election. A failed statistics fetch must not block the rest of a page.
type ElectionStats struct {
	ElectionID       string  `json:"election_id"`
	RegisteredVoters int64   `json:"registered_voters"`
	AccreditedVoters int64   `json:"accredited_voters"`
	VotesCast        int64   `json:"votes_cast"`
	Turnout          float64 `json:"turnout_percentage"`
}
