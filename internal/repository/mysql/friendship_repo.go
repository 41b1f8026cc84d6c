package mysql

import (
	"context"
	"errors"

	"spill/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendshipRepository struct {
	DB *gorm.DB
}

// Follow sets the relation to following (idempotent). changed=true only when
// the state actually flipped.
func (r *FriendshipRepository) Follow(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rel model.Friendship
		// select for update to avoid racing flips
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			First(&rel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				rel = model.Friendship{
					FollowerID: followerID,
					FolloweeID: followeeID,
					Status:     1,
				}
				if err = tx.Create(&rel).Error; err != nil {
					return err
				}
				changed = true
				return nil
			}
			return err
		}
		if rel.Status == 1 {
			changed = false
			return nil
		}
		if err := tx.Model(&model.Friendship{}).
			Where("id = ? AND status = 0", rel.ID).
			Update("status", 1).Error; err != nil {
			return err
		}
		changed = true
		return nil
	})
	return changed, err
}

func (r *FriendshipRepository) Unfollow(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rel model.Friendship
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			First(&rel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				changed = false
				return nil
			}
			return err
		}
		if rel.Status == 0 {
			changed = false
			return nil
		}
		if err := tx.Model(&model.Friendship{}).
			Where("id = ? AND status = 1", rel.ID).
			Update("status", 0).Error; err != nil {
			return err
		}
		changed = true
		return nil
	})
	return changed, err
}

func (r *FriendshipRepository) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).
		Model(&model.Friendship{}).
		Where("follower_id = ? AND followee_id = ? AND status = 1", followerID, followeeID).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListFollowings pages with an id cursor; fetches limit+1 to know whether a
// next page exists.
func (r *FriendshipRepository) ListFollowings(ctx context.Context, userID uint64, cursor uint64, limit int) ([]model.Friendship, uint64, error) {
	return r.list(ctx, "follower_id", userID, cursor, limit)
}

func (r *FriendshipRepository) ListFollowers(ctx context.Context, userID uint64, cursor uint64, limit int) ([]model.Friendship, uint64, error) {
	return r.list(ctx, "followee_id", userID, cursor, limit)
}

func (r *FriendshipRepository) list(ctx context.Context, column string, userID, cursor uint64, limit int) ([]model.Friendship, uint64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := r.DB.WithContext(ctx).Model(&model.Friendship{}).
		Where(column+" = ? AND status = 1", userID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	var rows []model.Friendship
	if err := q.Order("id DESC").Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	var next uint64
	if len(rows) > limit {
		next = rows[limit-1].ID
		rows = rows[:limit]
	}
	return rows, next, nil
}
