package models

import "time"

const (
	JobStatusOpen      = "open"
	JobStatusFilled    = "filled"
	JobStatusClosed    = "closed"
	JobStatusCancelled = "cancelled"
)

type Job struct {
	JobID string `gorm:"primaryKey;size:20"`

	Title                  string `gorm:"size:200"`
	SpecialtyRequired      string `gorm:"size:120;index"`
	SubSpecialtiesAccepted StringList

	Facility string `gorm:"size:200"`
	City     string `gorm:"size:100"`
	State    string `gorm:"size:50;index"`

	ShiftType          *string `gorm:"size:50"`
	MinYearsExperience *int
	ContractWeeks      *int
	StartDate          *time.Time
	HousingStipend     *float64
	PayRateWeekly      *float64

	Status       string `gorm:"size:50;default:open;index"`
	UrgencyLevel string `gorm:"size:20;default:normal"`

	CreatedAt  time.Time
	UpdatedAt  time.Time
	FilledDate *time.Time
}
