package memory

import (
	"time"

	"github.com/secureballot/secureballot/internal/core/domain"
)

// Seed loads a small demo dataset. It is only ever applied explicitly (the
// stub server's seed flag); nothing substitutes demo numbers for real ones.
func Seed(s *Store) {
	now := time.Now()

	s.AddVoter(&Voter{
		VoterID:  "VIN10000000001",
		Password: "password1",
		Profile: domain.UserProfile{
			ID:           "u-1",
			VoterID:      "VIN10000000001",
			FullName:     "Adaeze Okafor",
			Email:        "adaeze.okafor@example.com",
			PhoneNumber:  "+2348030000001",
			State:        "Anambra",
			LGA:          "Awka South",
			RegisteredAt: now.AddDate(-2, 0, 0),
		},
		PollingUnit: &domain.PollingUnit{
			ID:    "pu-04-09-03-012",
			Code:  "04-09-03-012",
			Name:  "Community Primary School Amawbia I",
			Ward:  "Amawbia",
			LGA:   "Awka South",
			State: "Anambra",
		},
	})
	s.AddVoter(&Voter{
		VoterID:  "VIN10000000002",
		Password: "password2",
		Profile: domain.UserProfile{
			ID:           "u-2",
			VoterID:      "VIN10000000002",
			FullName:     "Babatunde Adewale",
			Email:        "babatunde.adewale@example.com",
			State:        "Lagos",
			LGA:          "Ikeja",
			RegisteredAt: now.AddDate(-1, -3, 0),
		},
		IneligibleReason: "voter registration is pending review",
	})

	presidential := &domain.Election{
		ID:               "e-presidential",
		Name:             "2027 Presidential Election",
		ElectionType:     "Presidential Election",
		Status:           domain.StatusActive,
		StartDate:        now.Add(-24 * time.Hour),
		EndDate:          now.Add(24 * time.Hour),
		RegisteredVoters: 9_500_000,
	}
	s.AddElection(presidential)
	s.AddCandidate(presidential.ID, &domain.Candidate{
		ID: "c-p-1", FullName: "Ngozi Eze", PartyCode: "UPP",
		PartyName: "United Progress Party", Votes: 1_240_532,
		Manifesto: "Jobs, power and roads first.",
	})
	s.AddCandidate(presidential.ID, &domain.Candidate{
		ID: "c-p-2", FullName: "Ibrahim Musa", PartyCode: "NDC",
		PartyName: "National Democratic Congress", Votes: 1_180_114,
	})
	s.AddCandidate(presidential.ID, &domain.Candidate{
		ID: "c-p-3", FullName: "Folake Ajayi", PartyCode: "GRA",
		PartyName: "Grassroots Alliance", Votes: 830_907,
	})
	s.SetRegionalResults(presidential.ID, []domain.RegionalResult{
		{Region: "North Central", VotesCast: 540_210, Turnout: 41.2, LeadingParty: "NDC"},
		{Region: "North East", VotesCast: 498_771, Turnout: 39.8, LeadingParty: "NDC"},
		{Region: "North West", VotesCast: 731_055, Turnout: 44.5, LeadingParty: "NDC"},
		{Region: "South East", VotesCast: 445_830, Turnout: 38.1, LeadingParty: "UPP"},
		{Region: "South South", VotesCast: 512_346, Turnout: 40.7, LeadingParty: "UPP"},
		{Region: "South West", VotesCast: 523_341, Turnout: 42.9, LeadingParty: "GRA"},
	})
	s.SetHistoricalResults(presidential.ID, []domain.ResultsPoint{
		{Timestamp: now.Add(-20 * time.Hour), VotesCast: 410_000, Turnout: 4.3},
		{Timestamp: now.Add(-16 * time.Hour), VotesCast: 1_020_000, Turnout: 10.7},
		{Timestamp: now.Add(-12 * time.Hour), VotesCast: 1_760_000, Turnout: 18.5},
		{Timestamp: now.Add(-8 * time.Hour), VotesCast: 2_410_000, Turnout: 25.4},
		{Timestamp: now.Add(-4 * time.Hour), VotesCast: 2_980_000, Turnout: 31.4},
	})

	gubernatorial := &domain.Election{
		ID:               "e-gubernatorial",
		Name:             "Anambra Governorship Election",
		ElectionType:     "Gubernatorial",
		Status:           domain.StatusActive,
		StartDate:        now.Add(-12 * time.Hour),
		EndDate:          now.Add(36 * time.Hour),
		RegisteredVoters: 2_100_000,
	}
	s.AddElection(gubernatorial)
	s.AddCandidate(gubernatorial.ID, &domain.Candidate{
		ID: "c-g-1", FullName: "Chinedu Obi", PartyCode: "UPP",
		PartyName: "United Progress Party", Votes: 310_420,
	})
	s.AddCandidate(gubernatorial.ID, &domain.Candidate{
		ID: "c-g-2", FullName: "Amina Bello", PartyCode: "GRA",
		PartyName: "Grassroots Alliance", Votes: 289_776,
	})

	house := &domain.Election{
		ID:               "e-house",
		Name:             "House of Representatives Election",
		ElectionType:     "House of Representatives",
		Status:           domain.StatusScheduled,
		StartDate:        now.Add(7 * 24 * time.Hour),
		EndDate:          now.Add(8 * 24 * time.Hour),
		RegisteredVoters: 1_850_000,
	}
	s.AddElection(house)
	s.AddCandidate(house.ID, &domain.Candidate{
		ID: "c-h-1", FullName: "Emeka Nwosu", PartyCode: "NDC",
		PartyName: "National Democratic Congress",
	})

	senatorial := &domain.Election{
		ID:               "e-senate",
		Name:             "Senatorial District Election",
		ElectionType:     "Senate",
		Status:           domain.StatusCompleted,
		StartDate:        now.AddDate(0, -1, 0),
		EndDate:          now.AddDate(0, -1, 1),
		RegisteredVoters: 1_200_000,
	}
	s.AddElection(senatorial)
	s.AddCandidate(senatorial.ID, &domain.Candidate{
		ID: "c-s-1", FullName: "Hauwa Abdullahi", PartyCode: "UPP",
		PartyName: "United Progress Party", Votes: 402_118,
	})
	s.AddCandidate(senatorial.ID, &domain.Candidate{
		ID: "c-s-2", FullName: "Tunde Bakare", PartyCode: "NDC",
		PartyName: "National Democratic Congress", Votes: 397_054,
	})
}
