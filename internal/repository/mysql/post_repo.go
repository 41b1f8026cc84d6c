package mysql

import (
	"spill/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

// userSummary and venueSummary trim the preloaded associations to the fields
// the clients render.
func userSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "profile_image_url")
}

func venueSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "address")
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

// FindJoined loads a post with its owner and venue summaries.
func (r *PostRepository) FindJoined(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.
		Preload("User", userSummary).
		Preload("Venue", venueSummary).
		First(&post, id).Error
	return &post, err
}

// ListByVenue returns every post for the venue, newest first. Equal
// timestamps break by id, also descending.
func (r *PostRepository) ListByVenue(venueID uint64) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Preload("User", userSummary).
		Preload("Venue", venueSummary).
		Where("venue_id = ?", venueID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

// FindOwned looks the post up by id and owner in one query, so callers
// cannot tell a missing post from someone else's post.
func (r *PostRepository) FindOwned(id, userID uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&post).Error
	return &post, err
}

func (r *PostRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Post{}, id).Error
}
