package service

import (
	"context"

	"spill/internal/model"
	"spill/internal/repository/mysql"

	"gorm.io/gorm"
)

// FriendshipService implements the directed-follow model: a friendship row
// means follower follows followee, nothing is implied the other way.
type FriendshipService struct {
	repo *mysql.FriendshipRepository
}

func NewFriendshipService(db *gorm.DB) *FriendshipService {
	return &FriendshipService{
		repo: &mysql.FriendshipRepository{DB: db},
	}
}

func validatePair(followerID, followeeID uint64) error {
	if followerID == 0 || followeeID == 0 {
		return ErrInvalidUserID
	}
	if followerID == followeeID {
		return ErrSelfFriendship
	}
	return nil
}

func (s *FriendshipService) Follow(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	if err := validatePair(followerID, followeeID); err != nil {
		return false, err
	}
	return s.repo.Follow(ctx, followerID, followeeID)
}

func (s *FriendshipService) Unfollow(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	if err := validatePair(followerID, followeeID); err != nil {
		return false, err
	}
	return s.repo.Unfollow(ctx, followerID, followeeID)
}

func (s *FriendshipService) IsFollowing(ctx context.Context, followerID, followeeID uint64) (bool, error) {
	if followerID == 0 || followeeID == 0 {
		return false, ErrInvalidUserID
	}
	return s.repo.IsFollowing(ctx, followerID, followeeID)
}

func (s *FriendshipService) ListFollowings(ctx context.Context, userID uint64, cursor uint64, limit int) ([]model.Friendship, uint64, error) {
	return s.repo.ListFollowings(ctx, userID, cursor, limit)
}

func (s *FriendshipService) ListFollowers(ctx context.Context, userID uint64, cursor uint64, limit int) ([]model.Friendship, uint64, error) {
	return s.repo.ListFollowers(ctx, userID, cursor, limit)
}
