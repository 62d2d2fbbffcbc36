package models

import "time"

const (
	CandidateStatusActive   = "active"
	CandidateStatusInactive = "inactive"
	CandidateStatusPending  = "pending"
	CandidateStatusExpired  = "expired"
	CandidateStatusPassed   = "passed"
)

type Candidate struct {
	CandidateID string `gorm:"primaryKey;size:20"`

	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Phone     string `gorm:"size:50"`

	PrimarySpecialty string `gorm:"size:120;index"`
	SubSpecialties   StringList
	YearsExperience  *int

	PreferredStates  StringList
	PreferredRegions StringList

	AvailabilityDate     *time.Time
	DesiredContractWeeks *int
	PreferredShift       *string `gorm:"size:50"`
	NeedsHousing         *bool

	Status string `gorm:"column:candidate_status;size:50;not null;default:active;index"`

	Source    string `gorm:"size:100"`
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Candidate) FullName() string {
	return c.FirstName + " " + c.LastName
}
