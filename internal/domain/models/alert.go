package models

import "time"

const (
	AlertTypeContractEnding   = "contract_ending"
	AlertTypeNewMatch         = "new_match"
	AlertTypeDocumentExpiring = "document_expiring"

	AlertPriorityHigh   = "high"
	AlertPriorityNormal = "normal"
)

// Alert is an actionable event for a recruiter. At most one unread alert may
// exist per (alert_type, candidate, job-or-assignment) triple; the migration
// backs that with a partial unique index.
type Alert struct {
	AlertID string `gorm:"primaryKey;size:20"`

	AlertType    string  `gorm:"size:50;index"`
	CandidateID  string  `gorm:"size:20;index"`
	JobID        *string `gorm:"size:20"`
	AssignmentID *string `gorm:"size:20"`

	Priority string `gorm:"size:20;default:normal"`

	Title          string `gorm:"size:200"`
	Message        string `gorm:"type:text"`
	ActionRequired bool

	IsRead bool `gorm:"default:false;index"`

	NotificationSent bool
	SentAt           *time.Time

	CreatedAt time.Time `gorm:"index"`
}
