package service

import (
	"context"
	"errors"
	"io"

	"spill/internal/model"
	"spill/internal/pkg"
	"spill/internal/realtime"
	"spill/internal/repository/mysql"
	"spill/internal/storage"

	"gorm.io/gorm"
)

type PostService struct {
	repo   *mysql.PostRepository
	store  storage.ObjectStorage
	pub    realtime.Publisher
	events *pkg.KafkaProducer // nil-safe, optional
}

func NewPostService(db *gorm.DB, store storage.ObjectStorage, pub realtime.Publisher, events *pkg.KafkaProducer) *PostService {
	return &PostService{
		repo:   &mysql.PostRepository{DB: db},
		store:  store,
		pub:    pub,
		events: events,
	}
}

type CreatePostInput struct {
	UserID      uint64
	VenueID     uint64
	Caption     string
	VibeRating  int
	Filename    string
	ContentType string
	Image       io.Reader
}

// CreatePost uploads the image, writes the row, then announces it. An upload
// that succeeds before a failed insert leaves an orphaned object; there is no
// compensating delete.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*model.Post, error) {
	if in.Image == nil {
		return nil, ErrImageRequired
	}
	if in.VibeRating < 0 || in.VibeRating > 5 {
		return nil, ErrInvalidVibeRating
	}

	key := storage.PostKey(in.Filename)
	imageURL, err := s.store.Upload(ctx, key, in.ContentType, in.Image)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		UserID:     in.UserID,
		VenueID:    in.VenueID,
		ImageURL:   imageURL,
		Caption:    in.Caption,
		VibeRating: in.VibeRating,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}

	joined, err := s.repo.FindJoined(post.ID)
	if err != nil {
		return nil, err
	}

	s.pub.Publish(realtime.VenueChannel(in.VenueID), "new-post", joined)
	s.sendActivity("new-post", joined.ID, in.VenueID, in.UserID)

	return joined, nil
}

func (s *PostService) ListVenuePosts(venueID uint64) ([]model.Post, error) {
	return s.repo.ListByVenue(venueID)
}

// DeletePost removes the owner's post. The object delete is best effort; the
// row delete is authoritative.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.repo.FindOwned(postID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.store.Delete(ctx, storage.KeyFromURL(post.ImageURL)); err != nil {
		pkg.Log.Warn().Err(err).Uint64("post_id", postID).Msg("image delete failed, row removed anyway")
	}

	if err := s.repo.Delete(post.ID); err != nil {
		return err
	}

	s.pub.Publish(realtime.VenueChannel(post.VenueID), "delete-post", post.ID)
	s.sendActivity("delete-post", post.ID, post.VenueID, userID)

	return nil
}

func (s *PostService) sendActivity(typ string, postID, venueID, userID uint64) {
	if s.events == nil {
		return
	}
	go func() {
		ev := pkg.ActivityEvent{Type: typ, PostID: postID, VenueID: venueID, UserID: userID}
		if err := s.events.SendActivity(context.Background(), ev); err != nil {
			pkg.Log.Warn().Err(err).Str("type", typ).Msg("activity event failed")
		}
	}()
}
