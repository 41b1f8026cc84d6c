package service

import (
	"context"
	"errors"

	"spill/internal/model"
	"spill/internal/pkg"
	"spill/internal/repository/mysql"
	"spill/internal/repository/redis"

	"gorm.io/gorm"
)

type VenueService struct {
	repo        *mysql.VenueRepository
	checkinRepo *mysql.CheckinRepository
	presence    *redis.PresenceRepository
}

func NewVenueService(db *gorm.DB) *VenueService {
	return &VenueService{
		repo:        &mysql.VenueRepository{DB: db},
		checkinRepo: &mysql.CheckinRepository{DB: db},
		presence:    &redis.PresenceRepository{},
	}
}

// ListNearby returns venues by distance with their live presence counts. A
// presence read failure zeroes the count instead of failing the listing.
func (s *VenueService) ListNearby(ctx context.Context, lat, lng float64, limit int) ([]model.Venue, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	list, err := s.repo.ListNearby(lat, lng, limit)
	if err != nil {
		return nil, err
	}
	for i := range list {
		n, err := s.presence.Count(ctx, list[i].ID)
		if err != nil {
			pkg.Log.Warn().Err(err).Uint64("venue_id", list[i].ID).Msg("presence count failed")
			continue
		}
		list[i].PeopleNow = n
	}
	return list, nil
}

// Checkin writes the durable row first, then marks live presence.
func (s *VenueService) Checkin(ctx context.Context, userID, venueID uint64) (*model.VenueCheckin, error) {
	if _, err := s.repo.FindByID(venueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	checkin := &model.VenueCheckin{VenueID: venueID, UserID: userID}
	if err := s.checkinRepo.Create(checkin); err != nil {
		return nil, err
	}

	if err := s.presence.Mark(ctx, venueID, userID); err != nil {
		pkg.Log.Warn().Err(err).Uint64("venue_id", venueID).Msg("presence mark failed")
	}
	return checkin, nil
}

// CheckinHistory returns the venue's durable checkin rows, newest first.
func (s *VenueService) CheckinHistory(ctx context.Context, venueID uint64, limit int) ([]model.VenueCheckin, error) {
	if _, err := s.repo.FindByID(venueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.checkinRepo.ListByVenue(venueID, limit)
}
