package repositories

import (
	"context"
	"errors"

	"github.com/purplecow/recruiting/internal/domain/models"
	"gorm.io/gorm"
)

type Candidates struct {
	db *gorm.DB
}

func NewCandidatesRepository(db *gorm.DB) *Candidates {
	return &Candidates{db: db}
}

func (repo *Candidates) Add(ctx context.Context, candidate *models.Candidate) error {
	if candidate.CandidateID == "" {
		candidate.CandidateID = models.GenerateID("CND")
	}
	return repo.db.WithContext(ctx).Create(candidate).Error
}

// GetByID returns (nil, nil) when no candidate exists: a missing record is a
// soft miss for the matching paths, not an error.
func (repo *Candidates) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := repo.db.WithContext(ctx).First(&candidate, "candidate_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &candidate, nil
}

// GetActive matches the stored status case-insensitively, so legacy rows with
// "Active" still enter the candidate pool.
func (repo *Candidates) GetActive(ctx context.Context) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := repo.db.WithContext(ctx).
		Where("LOWER(candidate_status) = ?", models.CandidateStatusActive).
		Order("created_at").
		Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

func (repo *Candidates) Get(ctx context.Context, limit int, offset int) ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := repo.db.WithContext(ctx).
		Limit(limit).
		Offset(offset).
		Order("created_at").
		Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

func (repo *Candidates) Update(ctx context.Context, candidate *models.Candidate) error {
	return repo.db.WithContext(ctx).Model(&models.Candidate{}).
		Where("candidate_id = ?", candidate.CandidateID).
		Updates(candidate).Error
}

func (repo *Candidates) Remove(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Delete(&models.Candidate{}, "candidate_id = ?", id).Error
}
