package services

import (
	"context"
	"testing"

	"github.com/purplecow/recruiting/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockCandidates struct {
	mock.Mock
}

func (m *mockCandidates) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	args := m.Called(ctx, id)
	candidate, _ := args.Get(0).(*models.Candidate)
	return candidate, args.Error(1)
}

func (m *mockCandidates) GetActive(ctx context.Context) ([]models.Candidate, error) {
	args := m.Called(ctx)
	candidates, _ := args.Get(0).([]models.Candidate)
	return candidates, args.Error(1)
}

type mockJobs struct {
	mock.Mock
}

func (m *mockJobs) GetByID(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*models.Job)
	return job, args.Error(1)
}

func (m *mockJobs) GetOpen(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]models.Job)
	return jobs, args.Error(1)
}

type mockRules struct {
	mock.Mock
}

func (m *mockRules) GetActive(ctx context.Context) ([]models.MatchingRule, error) {
	args := m.Called(ctx)
	rules, _ := args.Get(0).([]models.MatchingRule)
	return rules, args.Error(1)
}

func Test_FindMatchesForJob_WhenJobMissing_ShouldReturnEmpty(t *testing.T) {

	candidates := &mockCandidates{}
	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, "JOB-missing").Return(nil, nil)
	rules := &mockRules{}

	engine := NewMatchingEngine(candidates, jobs, rules)

	matches, err := engine.FindMatchesForJob(context.Background(), "JOB-missing", DefaultMinScore)

	assert.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func Test_FindMatchesForJob_SortsByScoreDescending(t *testing.T) {

	job := &models.Job{
		JobID:             "JOB-1",
		SpecialtyRequired: "ICU",
		State:             "CA",
	}

	pool := []models.Candidate{
		{CandidateID: "CND-partial", PrimarySpecialty: "ICU"},                                              // no location preference
		{CandidateID: "CND-full", PrimarySpecialty: "ICU", PreferredStates: models.StringList{"CA"}},       // full location credit
		{CandidateID: "CND-partial-2", PrimarySpecialty: "ICU"},                                            // ties with the first
	}

	candidates := &mockCandidates{}
	candidates.On("GetActive", mock.Anything).Return(pool, nil)
	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, "JOB-1").Return(job, nil)
	rules := &mockRules{}
	rules.On("GetActive", mock.Anything).Return([]models.MatchingRule{}, nil)

	engine := NewMatchingEngine(candidates, jobs, rules)

	matches, err := engine.FindMatchesForJob(context.Background(), "JOB-1", 0)

	assert.NoError(t, err)
	assert.Len(t, matches, 3)
	assert.Equal(t, "CND-full", matches[0].Candidate.CandidateID)
	// Equal scores keep pool order.
	assert.Equal(t, "CND-partial", matches[1].Candidate.CandidateID)
	assert.Equal(t, "CND-partial-2", matches[2].Candidate.CandidateID)
	assert.GreaterOrEqual(t, matches[0].Score, matches[1].Score)
	assert.Equal(t, matches[1].Score, matches[2].Score)
}

func Test_FindMatchesForCandidate_DisqualifiedJobNeverListed(t *testing.T) {

	candidate := &models.Candidate{
		CandidateID:      "CND-1",
		PrimarySpecialty: "ICU",
		PreferredStates:  models.StringList{"CA"},
		YearsExperience:  intPtr(10),
	}

	pool := []models.Job{
		{JobID: "JOB-tx", SpecialtyRequired: "ICU", State: "TX"},
		{JobID: "JOB-ca", SpecialtyRequired: "ICU", State: "CA"},
	}

	stateRule := []models.MatchingRule{{
		RuleName:   "preferred state only",
		Action:     models.RuleActionDisqualify,
		Conditions: models.ConditionMap{models.ConditionStateRequired: true},
	}}

	candidates := &mockCandidates{}
	candidates.On("GetByID", mock.Anything, "CND-1").Return(candidate, nil)
	jobs := &mockJobs{}
	jobs.On("GetOpen", mock.Anything).Return(pool, nil)
	rules := &mockRules{}
	rules.On("GetActive", mock.Anything).Return(stateRule, nil)

	engine := NewMatchingEngine(candidates, jobs, rules)

	matches, err := engine.FindMatchesForCandidate(context.Background(), "CND-1", 0)

	assert.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, "JOB-ca", matches[0].Job.JobID)
}

func Test_FindMatchesForJob_BelowMinScoreFiltered(t *testing.T) {

	job := &models.Job{JobID: "JOB-1", SpecialtyRequired: "ICU", State: "CA"}
	pool := []models.Candidate{
		{CandidateID: "CND-weak", PrimarySpecialty: "Peds", PreferredStates: models.StringList{"NY"}},
	}

	candidates := &mockCandidates{}
	candidates.On("GetActive", mock.Anything).Return(pool, nil)
	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, "JOB-1").Return(job, nil)
	rules := &mockRules{}
	rules.On("GetActive", mock.Anything).Return([]models.MatchingRule{}, nil)

	engine := NewMatchingEngine(candidates, jobs, rules)

	matches, err := engine.FindMatchesForJob(context.Background(), "JOB-1", DefaultMinScore)

	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func Test_ActiveRules_CachedUntilInvalidated(t *testing.T) {

	job := &models.Job{JobID: "JOB-1", SpecialtyRequired: "ICU"}

	candidates := &mockCandidates{}
	candidates.On("GetActive", mock.Anything).Return([]models.Candidate{}, nil)
	jobs := &mockJobs{}
	jobs.On("GetByID", mock.Anything, "JOB-1").Return(job, nil)
	rules := &mockRules{}
	rules.On("GetActive", mock.Anything).Return([]models.MatchingRule{}, nil).Twice()

	engine := NewMatchingEngine(candidates, jobs, rules)

	_, err := engine.FindMatchesForJob(context.Background(), "JOB-1", 0)
	assert.NoError(t, err)
	_, err = engine.FindMatchesForJob(context.Background(), "JOB-1", 0)
	assert.NoError(t, err)

	rules.AssertNumberOfCalls(t, "GetActive", 1)

	engine.InvalidateRuleCache()

	_, err = engine.FindMatchesForJob(context.Background(), "JOB-1", 0)
	assert.NoError(t, err)

	rules.AssertNumberOfCalls(t, "GetActive", 2)
}
