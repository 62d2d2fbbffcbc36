package models

import "time"

const (
	AssignmentStatusActive    = "active"
	AssignmentStatusCompleted = "completed"
	AssignmentStatusCancelled = "cancelled"
)

type Assignment struct {
	AssignmentID string `gorm:"primaryKey;size:20"`
	CandidateID  string `gorm:"size:20;not null;index"`
	JobID        string `gorm:"size:20;not null;index"`

	StartDate *time.Time
	EndDate   *time.Time

	Status string `gorm:"size:50;index"`

	CreatedAt   time.Time
	CompletedAt *time.Time

	Candidate *Candidate `gorm:"foreignKey:CandidateID"`
	Job       *Job       `gorm:"foreignKey:JobID"`
}
