package services

import (
	"fmt"

	"github.com/purplecow/recruiting/internal/domain/models"
)

// applyMatchingRules runs the active rules against one pairing, in the order
// they were retrieved. A disqualifying rule short-circuits: no further rules
// are evaluated once one fires.
func applyMatchingRules(rules []models.MatchingRule, candidate *models.Candidate, job *models.Job) models.RuleOutcome {
	var outcome models.RuleOutcome

	for _, rule := range rules {
		if !ruleApplies(rule, candidate, job) {
			continue
		}

		switch rule.Action {
		case models.RuleActionDisqualify:
			outcome.Disqualified = true
			outcome.Notes = append(outcome.Notes,
				fmt.Sprintf("disqualified by %s: %s", rule.RuleName, rule.Description))
			return outcome

		case models.RuleActionBonus:
			outcome.BonusPoints += rule.Points
			outcome.Notes = append(outcome.Notes,
				fmt.Sprintf("%s: +%d points", rule.RuleName, rule.Points))

		case models.RuleActionPenalty:
			penalty := rule.Points
			if penalty < 0 {
				penalty = -penalty
			}
			outcome.BonusPoints -= penalty
			outcome.Notes = append(outcome.Notes,
				fmt.Sprintf("%s: -%d points", rule.RuleName, penalty))
		}
	}

	return outcome
}

// ruleApplies evaluates a rule's condition set with OR semantics: any one
// recognized key evaluating true makes the whole rule apply. Each recognized
// key expresses a failure condition, which is why OR is the right bias for
// disqualification rules. Unrecognized keys are ignored.
func ruleApplies(rule models.MatchingRule, candidate *models.Candidate, job *models.Job) bool {
	for key, value := range rule.Conditions {
		switch key {
		case models.ConditionSpecialtyMatchRequired:
			if boolValue(value) && candidate.PrimarySpecialty != job.SpecialtyRequired {
				return true
			}

		case models.ConditionMinExperience:
			threshold, ok := intValue(value)
			if ok && threshold > 0 {
				years := 0
				if candidate.YearsExperience != nil {
					years = *candidate.YearsExperience
				}
				if years < threshold {
					return true
				}
			}

		case models.ConditionStateRequired:
			if boolValue(value) && !candidate.PreferredStates.Contains(job.State) {
				return true
			}
		}
	}

	return false
}

func boolValue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// intValue handles the numeric shapes a JSON condition column can produce.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
