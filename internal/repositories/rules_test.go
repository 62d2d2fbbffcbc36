package repositories

import (
	"context"
	"testing"

	"github.com/purplecow/recruiting/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDbContext(t *testing.T) *DbContext {
	t.Helper()

	dbCtx, err := NewDbContext(":memory:")
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())

	t.Cleanup(func() {
		_ = dbCtx.Close()
	})
	return dbCtx
}

func Test_RulesGetActive_OrdersByPriorityDescThenRuleID(t *testing.T) {

	dbCtx := newTestDbContext(t)
	repo := NewRulesRepository(dbCtx.DB)
	ctx := context.Background()

	// Inserted out of order on purpose; retrieval order is what keeps the
	// disqualify short-circuit deterministic.
	rules := []models.MatchingRule{
		{RuleID: "RULB", RuleName: "low priority", Priority: 1, IsActive: true,
			Action: models.RuleActionBonus, Points: 5},
		{RuleID: "RULD", RuleName: "top priority, later id", Priority: 10, IsActive: true,
			Action: models.RuleActionDisqualify},
		{RuleID: "RULC", RuleName: "top priority, earlier id", Priority: 10, IsActive: true,
			Action: models.RuleActionPenalty, Points: 5},
		{RuleID: "RULA", RuleName: "mid priority", Priority: 5, IsActive: true,
			Action: models.RuleActionBonus, Points: 10},
		{RuleID: "RULE", RuleName: "inactive", Priority: 99, IsActive: false,
			Action: models.RuleActionDisqualify},
	}
	for i := range rules {
		require.NoError(t, repo.Add(ctx, &rules[i]))
	}

	active, err := repo.GetActive(ctx)

	require.NoError(t, err)
	require.Len(t, active, 4)

	ids := make([]string, 0, len(active))
	for _, rule := range active {
		ids = append(ids, rule.RuleID)
	}
	assert.Equal(t, []string{"RULC", "RULD", "RULA", "RULB"}, ids)
}

func Test_RulesUpdate_DeactivationVisibleToGetActive(t *testing.T) {

	dbCtx := newTestDbContext(t)
	repo := NewRulesRepository(dbCtx.DB)
	ctx := context.Background()

	rule := models.MatchingRule{
		RuleName:   "strict specialty",
		Action:     models.RuleActionDisqualify,
		Conditions: models.ConditionMap{models.ConditionSpecialtyMatchRequired: true},
		Priority:   3,
		IsActive:   true,
	}
	require.NoError(t, repo.Add(ctx, &rule))

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)

	rule.IsActive = false
	require.NoError(t, repo.Update(ctx, &rule))

	active, err = repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}
