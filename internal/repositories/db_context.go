package repositories

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/purplecow/recruiting/internal/domain/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	entities := []struct {
		name  string
		model any
	}{
		{"Candidate", models.Candidate{}},
		{"Job", models.Job{}},
		{"Assignment", models.Assignment{}},
		{"Document", models.Document{}},
		{"Alert", models.Alert{}},
		{"MatchingRule", models.MatchingRule{}},
		{"CommunicationLog", models.CommunicationLog{}},
		{"Expense", models.Expense{}},
		{"User", models.User{}},
	}

	for _, entity := range entities {
		if err := c.DB.AutoMigrate(entity.model); err != nil {
			return fmt.Errorf("failed to migrate %s entity: %w", entity.name, err)
		}
	}

	// Backstop for the unread-alert invariant: even if two sweeps race past
	// the read-then-insert dedup check, the second insert fails here.
	if err := c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_alerts_unread_dedup " +
		"ON alerts (alert_type, candidate_id, ifnull(job_id, ''), ifnull(assignment_id, '')) " +
		"WHERE is_read = 0;").
		Error; err != nil {
		return fmt.Errorf("failed to create alert dedup index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
