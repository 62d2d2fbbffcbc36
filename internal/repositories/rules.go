package repositories

import (
	"context"
	"errors"

	"github.com/purplecow/recruiting/internal/domain/models"
	"gorm.io/gorm"
)

type Rules struct {
	db *gorm.DB
}

func NewRulesRepository(db *gorm.DB) *Rules {
	return &Rules{db: db}
}

func (repo *Rules) Add(ctx context.Context, rule *models.MatchingRule) error {
	if rule.RuleID == "" {
		rule.RuleID = models.GenerateID("RUL")
	}
	return repo.db.WithContext(ctx).Create(rule).Error
}

// GetActive returns active rules ordered by priority descending, rule id
// ascending. The ordering is what makes rule evaluation deterministic.
func (repo *Rules) GetActive(ctx context.Context) ([]models.MatchingRule, error) {
	var rules []models.MatchingRule
	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("priority DESC, rule_id").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (repo *Rules) Get(ctx context.Context) ([]models.MatchingRule, error) {
	var rules []models.MatchingRule
	if err := repo.db.WithContext(ctx).
		Order("priority DESC, rule_id").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (repo *Rules) GetByID(ctx context.Context, id string) (*models.MatchingRule, error) {
	var rule models.MatchingRule
	err := repo.db.WithContext(ctx).First(&rule, "rule_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

func (repo *Rules) Update(ctx context.Context, rule *models.MatchingRule) error {
	return repo.db.WithContext(ctx).Model(&models.MatchingRule{}).
		Where("rule_id = ?", rule.RuleID).
		Select("RuleName", "Description", "Conditions", "Action", "Points", "Priority", "IsActive").
		Updates(rule).Error
}

func (repo *Rules) Remove(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Delete(&models.MatchingRule{}, "rule_id = ?", id).Error
}
