package model

import "time"

type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index" json:"postId"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	Body      string    `gorm:"size:500;not null" json:"body"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
