package model

import "time"

// Friendship is a directed follow: FollowerID follows FolloweeID.
// Rows are kept on unfollow with Status=0 so re-follow is a flip, not an insert.
type Friendship struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	FollowerID uint64    `gorm:"not null;index:idx_follower_id;uniqueIndex:uk_follower_followee" json:"followerId"`
	FolloweeID uint64    `gorm:"not null;index:idx_followee_id;uniqueIndex:uk_follower_followee" json:"followeeId"`
	Status     int8      `gorm:"not null;default:1;comment:'1=following,0=unfollowed'" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"-"`
}

func (Friendship) TableName() string {
	return "friendships"
}
