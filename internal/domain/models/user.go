package models

import "time"

type User struct {
	UserID string `gorm:"primaryKey;size:36"`

	Email          string `gorm:"size:255;uniqueIndex;not null"`
	HashedPassword string `gorm:"size:255;not null"`

	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`

	Role     string `gorm:"size:50;default:recruiter"`
	IsActive bool   `gorm:"default:true"`

	CreatedAt time.Time
	LastLogin *time.Time
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
