package models

// MatchDetails is the human-readable explanation of a candidate/job pairing.
// The booleans must agree in judgment with the scoring factors even though
// the score itself awards finer-grained partial credit.
type MatchDetails struct {
	SpecialtyMatch    bool     `json:"specialty_match"`
	LocationMatch     bool     `json:"location_match"`
	ExperienceMatch   bool     `json:"experience_match"`
	AvailabilityMatch bool     `json:"availability_match"`
	Reasons           []string `json:"reasons"`
	Concerns          []string `json:"concerns"`
}

// RuleOutcome is the result of running the active matching rules against one
// pairing.
type RuleOutcome struct {
	Disqualified bool
	BonusPoints  int
	Notes        []string
}

// CandidateMatch ranks one candidate against a job. Ephemeral: built per
// query, never persisted.
type CandidateMatch struct {
	Candidate Candidate    `json:"candidate"`
	Score     int          `json:"score"`
	Details   MatchDetails `json:"match_details"`
	RuleNotes []string     `json:"rule_notes"`
}

// JobMatch ranks one job against a candidate.
type JobMatch struct {
	Job       Job          `json:"job"`
	Score     int          `json:"score"`
	Details   MatchDetails `json:"match_details"`
	RuleNotes []string     `json:"rule_notes"`
}

// BatchMatchResult aggregates a batch-matching sweep.
type BatchMatchResult struct {
	CandidatesProcessed int `json:"candidates_processed"`
	TotalMatches        int `json:"total_matches"`
	AlertsCreated       int `json:"alerts_created"`
}

// EndingAssignment is one entry of an ending-assignments sweep.
type EndingAssignment struct {
	Assignment       Assignment `json:"assignment"`
	Candidate        Candidate  `json:"candidate"`
	DaysRemaining    int        `json:"days_remaining"`
	PotentialMatches []JobMatch `json:"potential_matches"`
}

// DocumentScanResult aggregates an expiring-documents sweep.
type DocumentScanResult struct {
	DocumentsChecked  int `json:"documents_checked"`
	AlertsCreated     int `json:"alerts_created"`
	NotificationsSent int `json:"notifications_sent"`
}
