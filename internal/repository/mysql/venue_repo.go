package mysql

import (
	"spill/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepository struct {
	DB *gorm.DB
}

func (r *VenueRepository) FindByID(id uint64) (*model.Venue, error) {
	var venue model.Venue
	err := r.DB.First(&venue, id).Error
	return &venue, err
}

// ListNearby orders by squared degree distance to the given point. The venue
// table is small and read-mostly, so the sort happens in SQL without a
// geospatial index.
func (r *VenueRepository) ListNearby(lat, lng float64, limit int) ([]model.Venue, error) {
	var list []model.Venue
	err := r.DB.
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:  "POW(latitude - ?, 2) + POW(longitude - ?, 2)",
			Vars: []any{lat, lng},
		}}).
		Limit(limit).
		Find(&list).Error
	return list, err
}
