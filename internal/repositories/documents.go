package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/purplecow/recruiting/internal/domain/models"
	"gorm.io/gorm"
)

type Documents struct {
	db *gorm.DB
}

func NewDocumentsRepository(db *gorm.DB) *Documents {
	return &Documents{db: db}
}

func (repo *Documents) Add(ctx context.Context, document *models.Document) error {
	if document.DocumentID == "" {
		document.DocumentID = models.GenerateID("DOC")
	}
	return repo.db.WithContext(ctx).Create(document).Error
}

func (repo *Documents) GetByID(ctx context.Context, id string) (*models.Document, error) {
	var document models.Document
	err := repo.db.WithContext(ctx).First(&document, "document_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

// GetExpiringBetween returns not-yet-expired documents whose expiration date
// lies in [from, to].
func (repo *Documents) GetExpiringBetween(ctx context.Context, from, to time.Time) ([]models.Document, error) {
	var documents []models.Document
	if err := repo.db.WithContext(ctx).
		Preload("Candidate").
		Where("expiration_date IS NOT NULL AND expiration_date >= ? AND expiration_date <= ? AND status != ?",
			from, to, models.DocumentStatusExpired).
		Order("expiration_date").
		Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

func (repo *Documents) GetByCandidate(ctx context.Context, candidateID string) ([]models.Document, error) {
	var documents []models.Document
	if err := repo.db.WithContext(ctx).
		Where("candidate_id = ?", candidateID).
		Order("uploaded_at").
		Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

func (repo *Documents) Update(ctx context.Context, document *models.Document) error {
	return repo.db.WithContext(ctx).Model(&models.Document{}).
		Where("document_id = ?", document.DocumentID).
		Updates(document).Error
}

func (repo *Documents) Remove(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Delete(&models.Document{}, "document_id = ?", id).Error
}
