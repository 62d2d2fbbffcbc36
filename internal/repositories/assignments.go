package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/purplecow/recruiting/internal/domain/models"
	"gorm.io/gorm"
)

type Assignments struct {
	db *gorm.DB
}

func NewAssignmentsRepository(db *gorm.DB) *Assignments {
	return &Assignments{db: db}
}

func (repo *Assignments) Add(ctx context.Context, assignment *models.Assignment) error {
	if assignment.AssignmentID == "" {
		assignment.AssignmentID = models.GenerateID("ASG")
	}
	return repo.db.WithContext(ctx).Create(assignment).Error
}

func (repo *Assignments) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	var assignment models.Assignment
	err := repo.db.WithContext(ctx).Preload("Candidate").Preload("Job").
		First(&assignment, "assignment_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// GetEndingBetween returns active assignments whose end date lies in
// [from, to], candidate preloaded for alert messages.
func (repo *Assignments) GetEndingBetween(ctx context.Context, from, to time.Time) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := repo.db.WithContext(ctx).
		Preload("Candidate").
		Where("status = ? AND end_date IS NOT NULL AND end_date >= ? AND end_date <= ?",
			models.AssignmentStatusActive, from, to).
		Order("end_date").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *Assignments) Get(ctx context.Context, limit int, offset int) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := repo.db.WithContext(ctx).
		Limit(limit).
		Offset(offset).
		Order("created_at").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *Assignments) Update(ctx context.Context, assignment *models.Assignment) error {
	return repo.db.WithContext(ctx).Model(&models.Assignment{}).
		Where("assignment_id = ?", assignment.AssignmentID).
		Updates(assignment).Error
}
