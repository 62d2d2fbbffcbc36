package models

import "time"

type CommunicationLog struct {
	LogID       string  `gorm:"primaryKey;size:20"`
	CandidateID string  `gorm:"size:20;index"`
	JobID       *string `gorm:"size:20"`

	CommunicationType string `gorm:"size:50"`
	Direction         string `gorm:"size:20"`

	Subject string `gorm:"size:500"`
	Body    string `gorm:"type:text"`

	TemplateUsed string `gorm:"size:100"`
	Status       string `gorm:"size:50"`

	CreatedAt time.Time
}
