package models

import "time"

type Expense struct {
	ExpenseID    string  `gorm:"primaryKey;size:20"`
	CandidateID  string  `gorm:"size:20;index"`
	AssignmentID *string `gorm:"size:20"`

	ExpenseType string `gorm:"size:50"`
	Amount      float64
	Description string `gorm:"type:text"`

	Status     string `gorm:"size:50;default:pending"`
	ApprovedAt *time.Time
	PaidAt     *time.Time

	SubmittedAt time.Time
}
