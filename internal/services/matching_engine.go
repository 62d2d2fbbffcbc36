package services

import (
	"context"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/purplecow/recruiting/internal/domain/models"
	"github.com/purplecow/recruiting/internal/metrics"
)

// DefaultMinScore is the cutoff applied when a caller does not supply one.
const DefaultMinScore = 50

const activeRulesCacheKey = "active_rules"

type candidateSource interface {
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	GetActive(ctx context.Context) ([]models.Candidate, error)
}

type jobSource interface {
	GetByID(ctx context.Context, id string) (*models.Job, error)
	GetOpen(ctx context.Context) ([]models.Job, error)
}

type ruleSource interface {
	GetActive(ctx context.Context) ([]models.MatchingRule, error)
}

// MatchingEngine ranks candidates against jobs (and vice versa) with a
// deterministic weighted score plus a configurable rule overlay. It is
// synchronous and side-effect free; alert creation lives in AlertSweeper.
type MatchingEngine struct {
	candidates candidateSource
	jobs       jobSource
	rules      ruleSource
	ruleCache  *gocache.Cache
}

func NewMatchingEngine(candidates candidateSource, jobs jobSource, rules ruleSource) *MatchingEngine {
	return &MatchingEngine{
		candidates: candidates,
		jobs:       jobs,
		rules:      rules,
		ruleCache:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// InvalidateRuleCache drops the cached active-rule set. Rule CRUD must call
// this so changed rules take effect immediately.
func (e *MatchingEngine) InvalidateRuleCache() {
	e.ruleCache.Delete(activeRulesCacheKey)
}

// FindMatchesForJob ranks the active candidate pool against one job. A
// missing job yields an empty list, not an error. Results are sorted by
// score descending; ties keep pool order.
func (e *MatchingEngine) FindMatchesForJob(ctx context.Context, jobID string, minScore int) ([]models.CandidateMatch, error) {
	start := time.Now()
	defer func() {
		metrics.MatchQueryDuration.WithLabelValues("job").Observe(time.Since(start).Seconds())
	}()

	job, err := e.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return []models.CandidateMatch{}, nil
	}

	pool, err := e.candidates.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	rules, err := e.activeRules(ctx)
	if err != nil {
		return nil, err
	}

	matches := []models.CandidateMatch{}
	for _, candidate := range pool {
		score, outcome, keep := evaluatePairing(rules, &candidate, job, minScore)
		if !keep {
			continue
		}
		matches = append(matches, models.CandidateMatch{
			Candidate: candidate,
			Score:     score,
			Details:   matchDetails(&candidate, job),
			RuleNotes: outcome.Notes,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	metrics.MatchesComputedCounter.Add(float64(len(matches)))
	return matches, nil
}

// FindMatchesForCandidate ranks the open-job pool against one candidate.
// Symmetric to FindMatchesForJob.
func (e *MatchingEngine) FindMatchesForCandidate(ctx context.Context, candidateID string, minScore int) ([]models.JobMatch, error) {
	start := time.Now()
	defer func() {
		metrics.MatchQueryDuration.WithLabelValues("candidate").Observe(time.Since(start).Seconds())
	}()

	candidate, err := e.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return []models.JobMatch{}, nil
	}

	pool, err := e.jobs.GetOpen(ctx)
	if err != nil {
		return nil, err
	}

	rules, err := e.activeRules(ctx)
	if err != nil {
		return nil, err
	}

	matches := []models.JobMatch{}
	for _, job := range pool {
		score, outcome, keep := evaluatePairing(rules, candidate, &job, minScore)
		if !keep {
			continue
		}
		matches = append(matches, models.JobMatch{
			Job:       job,
			Score:     score,
			Details:   matchDetails(candidate, &job),
			RuleNotes: outcome.Notes,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	metrics.MatchesComputedCounter.Add(float64(len(matches)))
	return matches, nil
}

// evaluatePairing scores one pairing and applies the rule overlay. The third
// return value is false when the pairing is disqualified or below minScore.
func evaluatePairing(rules []models.MatchingRule, candidate *models.Candidate, job *models.Job, minScore int) (int, models.RuleOutcome, bool) {
	score := calculateMatchScore(candidate, job)

	outcome := applyMatchingRules(rules, candidate, job)
	if outcome.Disqualified {
		return 0, outcome, false
	}

	score = clampScore(score + outcome.BonusPoints)
	return score, outcome, score >= minScore
}

func (e *MatchingEngine) activeRules(ctx context.Context) ([]models.MatchingRule, error) {
	if cached, found := e.ruleCache.Get(activeRulesCacheKey); found {
		return cached.([]models.MatchingRule), nil
	}

	rules, err := e.rules.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	e.ruleCache.Set(activeRulesCacheKey, rules, gocache.DefaultExpiration)
	return rules, nil
}
