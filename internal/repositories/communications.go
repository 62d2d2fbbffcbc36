package repositories

import (
	"context"

	"github.com/purplecow/recruiting/internal/domain/models"
	"gorm.io/gorm"
)

type Communications struct {
	db *gorm.DB
}

func NewCommunicationsRepository(db *gorm.DB) *Communications {
	return &Communications{db: db}
}

func (repo *Communications) Add(ctx context.Context, entry *models.CommunicationLog) error {
	if entry.LogID == "" {
		entry.LogID = models.GenerateID("COM")
	}
	return repo.db.WithContext(ctx).Create(entry).Error
}

func (repo *Communications) GetByCandidate(ctx context.Context, candidateID string, limit int) ([]models.CommunicationLog, error) {
	var entries []models.CommunicationLog
	if err := repo.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
