package mysql

import (
	"spill/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	DB *gorm.DB
}

type LikeRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) ListByPost(postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.
		Preload("User", userSummary).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

// Like inserts idempotently; changed=false means the row already existed.
func (r *LikeRepository) Like(postID, userID uint64) (bool, error) {
	tx := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(&model.Like{PostID: postID, UserID: userID})
	return tx.RowsAffected > 0, tx.Error
}

func (r *LikeRepository) Unlike(postID, userID uint64) (bool, error) {
	tx := r.DB.Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.Like{})
	return tx.RowsAffected > 0, tx.Error
}

func (r *LikeRepository) IsLiked(postID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error
	return count > 0, err
}
