package model

import "time"

// VenueCheckin records a user's presence at a venue at a point in time.
// The live "people here now" count lives in the presence cache; these rows
// are the durable history.
type VenueCheckin struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	VenueID   uint64    `gorm:"not null;index:idx_venue_time,priority:1" json:"venueId"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	CreatedAt time.Time `gorm:"index:idx_venue_time,priority:2,sort:desc" json:"createdAt"`
}

func (VenueCheckin) TableName() string {
	return "venue_checkins"
}
