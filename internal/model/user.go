package model

import "time"

type User struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"size:32;not null" json:"username,omitempty"`
	Email           string    `gorm:"uniqueIndex;size:64;not null" json:"email,omitempty"`
	PasswordHash    string    `gorm:"size:255;not null" json:"-"`
	ProfileImageURL string    `gorm:"size:512" json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"-"`
}
