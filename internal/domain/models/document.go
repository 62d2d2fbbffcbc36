package models

import "time"

const DocumentStatusExpired = "expired"

type Document struct {
	DocumentID  string `gorm:"primaryKey;size:20"`
	CandidateID string `gorm:"size:20;index"`

	DocumentType   string `gorm:"size:100;index"`
	FileName       string `gorm:"size:255"`
	ExpirationDate *time.Time

	Status string `gorm:"size:50;default:pending"`

	UploadedAt time.Time
	Notes      string `gorm:"type:text"`

	Candidate *Candidate `gorm:"foreignKey:CandidateID"`
}
