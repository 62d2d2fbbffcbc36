package repositories

import (
	"context"
	"errors"

	"github.com/purplecow/recruiting/internal/domain/models"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *models.Job) error {
	if job.JobID == "" {
		job.JobID = models.GenerateID("JOB")
	}
	return repo.db.WithContext(ctx).Create(job).Error
}

func (repo *Jobs) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := repo.db.WithContext(ctx).First(&job, "job_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// GetOpen requires the status to be exactly "open". Unlike the candidate
// pool, job statuses are system-assigned and case-stable.
func (repo *Jobs) GetOpen(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := repo.db.WithContext(ctx).
		Where("status = ?", models.JobStatusOpen).
		Order("created_at").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) Get(ctx context.Context, limit int, offset int) ([]models.Job, error) {
	var jobs []models.Job
	if err := repo.db.WithContext(ctx).
		Limit(limit).
		Offset(offset).
		Order("created_at").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) Update(ctx context.Context, job *models.Job) error {
	return repo.db.WithContext(ctx).Model(&models.Job{}).
		Where("job_id = ?", job.JobID).
		Updates(job).Error
}

func (repo *Jobs) Remove(ctx context.Context, id string) error {
	return repo.db.WithContext(ctx).Delete(&models.Job{}, "job_id = ?", id).Error
}
