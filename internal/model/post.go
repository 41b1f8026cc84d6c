package model

import "time"

type Post struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	UserID     uint64    `gorm:"not null;index:idx_user_time" json:"userId"`
	VenueID    uint64    `gorm:"not null;index:idx_venue_time,priority:1" json:"venueId"`
	ImageURL   string    `gorm:"size:512;not null" json:"imageUrl"`
	Caption    string    `gorm:"size:500" json:"caption"`
	VibeRating int       `gorm:"not null;default:0" json:"vibeRating"`
	CreatedAt  time.Time `gorm:"index:idx_venue_time,priority:2,sort:desc" json:"createdAt"`

	// Joined summaries, filled only by preloading queries.
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Venue *Venue `gorm:"foreignKey:VenueID" json:"venue,omitempty"`

	// Engagement children. Nil and empty both mean zero.
	Comments []Comment `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:PostID" json:"likes,omitempty"`
}
