package repositories

import (
	"context"
	"errors"

	"github.com/purplecow/recruiting/internal/domain/models"
	"gorm.io/gorm"
)

type Expenses struct {
	db *gorm.DB
}

func NewExpensesRepository(db *gorm.DB) *Expenses {
	return &Expenses{db: db}
}

func (repo *Expenses) Add(ctx context.Context, expense *models.Expense) error {
	if expense.ExpenseID == "" {
		expense.ExpenseID = models.GenerateID("EXP")
	}
	return repo.db.WithContext(ctx).Create(expense).Error
}

func (repo *Expenses) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	var expense models.Expense
	err := repo.db.WithContext(ctx).First(&expense, "expense_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (repo *Expenses) GetByCandidate(ctx context.Context, candidateID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := repo.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("submitted_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (repo *Expenses) Update(ctx context.Context, expense *models.Expense) error {
	return repo.db.WithContext(ctx).Model(&models.Expense{}).
		Where("expense_id = ?", expense.ExpenseID).
		Updates(expense).Error
}

func (repo *Expenses) Remove(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Delete(&models.Expense{}, "expense_id = ?", id).Error
}
