package service

import (
	"context"
	"errors"

	"spill/internal/model"
	"spill/internal/repository/mysql"

	"gorm.io/gorm"
)

type EngagementService struct {
	postRepo    *mysql.PostRepository
	commentRepo *mysql.CommentRepository
	likeRepo    *mysql.LikeRepository
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{
		postRepo:    &mysql.PostRepository{DB: db},
		commentRepo: &mysql.CommentRepository{DB: db},
		likeRepo:    &mysql.LikeRepository{DB: db},
	}
}

func (s *EngagementService) postExists(postID uint64) error {
	if _, err := s.postRepo.FindJoined(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *EngagementService) Like(ctx context.Context, userID, postID uint64) (bool, error) {
	if err := s.postExists(postID); err != nil {
		return false, err
	}
	return s.likeRepo.Like(postID, userID)
}

func (s *EngagementService) Unlike(ctx context.Context, userID, postID uint64) (bool, error) {
	return s.likeRepo.Unlike(postID, userID)
}

func (s *EngagementService) AddComment(ctx context.Context, userID, postID uint64, body string) (*model.Comment, error) {
	if body == "" {
		return nil, errors.New("comment body required")
	}
	if err := s.postExists(postID); err != nil {
		return nil, err
	}
	comment := &model.Comment{PostID: postID, UserID: userID, Body: body}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *EngagementService) ListComments(ctx context.Context, postID uint64) ([]model.Comment, error) {
	if err := s.postExists(postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(postID)
}
