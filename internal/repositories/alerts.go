package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/purplecow/recruiting/internal/domain/models"
	"gorm.io/gorm"
)

type Alerts struct {
	db *gorm.DB
}

func NewAlertsRepository(db *gorm.DB) *Alerts {
	return &Alerts{db: db}
}

// UnreadExists reports whether an unread alert of the given type exists for
// the candidate. jobID and assignmentID narrow the check when non-empty.
func (repo *Alerts) UnreadExists(ctx context.Context, alertType, candidateID, jobID, assignmentID string) (bool, error) {
	query := repo.db.WithContext(ctx).Model(&models.Alert{}).
		Where("alert_type = ? AND candidate_id = ? AND is_read = ?", alertType, candidateID, false)
	if jobID != "" {
		query = query.Where("job_id = ?", jobID)
	}
	if assignmentID != "" {
		query = query.Where("assignment_id = ?", assignmentID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreatedSinceExists reports whether any alert of the given type was created
// for the candidate at or after the given time, read or not.
func (repo *Alerts) CreatedSinceExists(ctx context.Context, alertType, candidateID string, since time.Time) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.Alert{}).
		Where("alert_type = ? AND candidate_id = ? AND created_at >= ?", alertType, candidateID, since).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateBatch persists a sweep's alerts in a single transaction, so a sweep
// commits once at the end rather than per record.
func (repo *Alerts) CreateBatch(ctx context.Context, alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	for i := range alerts {
		if alerts[i].AlertID == "" {
			alerts[i].AlertID = models.GenerateID("ALT")
		}
	}
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&alerts).Error
	})
}

func (repo *Alerts) GetByID(ctx context.Context, id string) (*models.Alert, error) {
	var alert models.Alert
	err := repo.db.WithContext(ctx).First(&alert, "alert_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

func (repo *Alerts) GetUnread(ctx context.Context, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := repo.db.WithContext(ctx).
		Where("is_read = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (repo *Alerts) MarkRead(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Model(&models.Alert{}).
		Where("alert_id = ?", id).
		Update("is_read", true).Error
}

// RemoveReadOlderThan deletes read alerts created before the cutoff and
// returns the number of rows removed.
func (repo *Alerts) RemoveReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).
		Delete(&models.Alert{}, "is_read = ? AND created_at < ?", true, cutoff)
	return res.RowsAffected, res.Error
}
