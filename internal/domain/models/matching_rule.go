package models

import "time"

const (
	RuleActionDisqualify = "disqualify"
	RuleActionBonus      = "bonus"
	RuleActionPenalty    = "penalty"
)

// Recognized condition keys. Each expresses a failure condition; a rule
// applies when any one of its recognized keys evaluates true.
const (
	ConditionSpecialtyMatchRequired = "specialty_match_required"
	ConditionMinExperience          = "min_experience"
	ConditionStateRequired          = "state_required"
)

type MatchingRule struct {
	RuleID string `gorm:"primaryKey;size:20"`

	RuleName    string `gorm:"size:200"`
	Description string `gorm:"type:text"`

	Conditions ConditionMap
	Action     string `gorm:"size:50"`
	Points     int

	Priority int  `gorm:"default:1"`
	IsActive bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
