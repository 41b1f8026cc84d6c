package model

// Venue is read-mostly; rows are seeded, the API never mutates them.
type Venue struct {
	ID        uint64  `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:128;not null" json:"name,omitempty"`
	Address   string  `gorm:"size:255" json:"address,omitempty"`
	Latitude  float64 `gorm:"not null" json:"latitude,omitempty"`
	Longitude float64 `gorm:"not null" json:"longitude,omitempty"`
	ImageURL  string  `gorm:"size:512" json:"imageUrl,omitempty"`

	// PeopleNow is computed from the presence cache, never stored.
	PeopleNow int64 `gorm:"-" json:"peopleNow,omitempty"`
}
