package domain

import "time"

type UserProfile struct {
	ID           string     `json:"id"`
	VoterID      string     `json:"voter_id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	PhoneNumber  string     `json:"phone_number,omitempty"`
	State        string     `json:"state,omitempty"`
	LGA          string     `json:"lga,omitempty"`
	RegisteredAt time.Time  `json:"registered_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// ProfileUpdate carries the subset of profile fields a voter may change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

type PollingUnit struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Ward    string `json:"ward"`
	LGA     string `json:"lga"`
	State   string `json:"state"`
	Address string `json:"address,omitempty"`
}

// Session is the authenticated state for the running client. Authenticated
// implies User and Token are set.
type Session struct {
	User          *UserProfile
	Token         string
	Authenticated bool
	Initialized   bool
}
