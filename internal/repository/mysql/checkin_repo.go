package mysql

import (
	"spill/internal/model"

	"gorm.io/gorm"
)

type CheckinRepository struct {
	DB *gorm.DB
}

func (r *CheckinRepository) Create(checkin *model.VenueCheckin) error {
	return r.DB.Create(checkin).Error
}

func (r *CheckinRepository) ListByVenue(venueID uint64, limit int) ([]model.VenueCheckin, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var list []model.VenueCheckin
	err := r.DB.
		Where("venue_id = ?", venueID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}
