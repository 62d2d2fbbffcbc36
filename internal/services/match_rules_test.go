package services

import (
	"testing"

	"github.com/purplecow/recruiting/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func Test_ApplyMatchingRules_DisqualifyShortCircuits(t *testing.T) {

	rules := []models.MatchingRule{
		{
			RuleName:   "specialty strict",
			Action:     models.RuleActionDisqualify,
			Conditions: models.ConditionMap{models.ConditionSpecialtyMatchRequired: true},
		},
		{
			RuleName:   "loyalty bonus",
			Action:     models.RuleActionBonus,
			Points:     10,
			Conditions: models.ConditionMap{models.ConditionMinExperience: 1},
		},
	}

	candidate := &models.Candidate{PrimarySpecialty: "ER"}
	job := &models.Job{SpecialtyRequired: "ICU"}

	outcome := applyMatchingRules(rules, candidate, job)

	assert.True(t, outcome.Disqualified)
	assert.Equal(t, 0, outcome.BonusPoints)
	assert.Len(t, outcome.Notes, 1)
}

func Test_ApplyMatchingRules_BonusAndPenaltyAccumulate(t *testing.T) {

	rules := []models.MatchingRule{
		{
			RuleName:   "junior penalty",
			Action:     models.RuleActionPenalty,
			Points:     15, // penalties apply as a deduction whatever the sign
			Conditions: models.ConditionMap{models.ConditionMinExperience: 5},
		},
		{
			RuleName:   "out of area",
			Action:     models.RuleActionPenalty,
			Points:     -5,
			Conditions: models.ConditionMap{models.ConditionStateRequired: true},
		},
	}

	candidate := &models.Candidate{
		YearsExperience: intPtr(2),
		PreferredStates: models.StringList{"CA"},
	}
	job := &models.Job{State: "TX"}

	outcome := applyMatchingRules(rules, candidate, job)

	assert.False(t, outcome.Disqualified)
	assert.Equal(t, -20, outcome.BonusPoints)
	assert.Len(t, outcome.Notes, 2)
}

// Condition keys combine with OR semantics on purpose: each recognized key
// names a failure condition, and any single failure makes the rule apply.
// Changing this to AND is a behavior change, not a cleanup.
func Test_RuleApplies_AnySingleConditionTriggers(t *testing.T) {

	rule := models.MatchingRule{
		Conditions: models.ConditionMap{
			models.ConditionSpecialtyMatchRequired: true,
			models.ConditionMinExperience:          2,
		},
	}

	// Specialty matches but experience falls short: still applies.
	candidate := &models.Candidate{
		PrimarySpecialty: "ICU",
		YearsExperience:  intPtr(1),
	}
	job := &models.Job{SpecialtyRequired: "ICU"}

	assert.True(t, ruleApplies(rule, candidate, job))

	// Both conditions satisfied: does not apply.
	experienced := &models.Candidate{
		PrimarySpecialty: "ICU",
		YearsExperience:  intPtr(5),
	}
	assert.False(t, ruleApplies(rule, experienced, job))
}

func Test_RuleApplies_MinExperienceFromJsonNumber(t *testing.T) {

	// JSON decoding hands numbers over as float64.
	rule := models.MatchingRule{
		Conditions: models.ConditionMap{models.ConditionMinExperience: float64(3)},
	}

	assert.True(t, ruleApplies(rule, &models.Candidate{YearsExperience: intPtr(2)}, &models.Job{}))
	assert.False(t, ruleApplies(rule, &models.Candidate{YearsExperience: intPtr(3)}, &models.Job{}))

	// Missing experience counts as zero years.
	assert.True(t, ruleApplies(rule, &models.Candidate{}, &models.Job{}))
}

func Test_RuleApplies_UnrecognizedKeysIgnored(t *testing.T) {

	rule := models.MatchingRule{
		Conditions: models.ConditionMap{"phase_of_moon": "full"},
	}

	assert.False(t, ruleApplies(rule, &models.Candidate{}, &models.Job{}))
}

func Test_EvaluatePairing_RuleAdjustmentsAreClamped(t *testing.T) {

	candidate := &models.Candidate{
		PrimarySpecialty: "ICU",
		PreferredStates:  models.StringList{"CA"},
		YearsExperience:  intPtr(10),
	}
	job := &models.Job{
		SpecialtyRequired:  "ICU",
		State:              "CA",
		MinYearsExperience: intPtr(2),
	}

	bonus := []models.MatchingRule{{
		RuleName:   "critical need",
		Action:     models.RuleActionBonus,
		Points:     50,
		Conditions: models.ConditionMap{models.ConditionMinExperience: 20},
	}}

	score, _, keep := evaluatePairing(bonus, candidate, job, 0)
	assert.True(t, keep)
	assert.Equal(t, 100, score)
}
