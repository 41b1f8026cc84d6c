package model

import "time"

type Like struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	PostID    uint64    `gorm:"not null;index;uniqueIndex:uk_post_user" json:"postId"`
	UserID    uint64    `gorm:"not null;index;uniqueIndex:uk_post_user" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
