package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"spill/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploadedKeys []string
	deletedKeys  []string
	uploadErr    error
	deleteErr    error
}

func (f *fakeStorage) Upload(_ context.Context, key, _ string, _ io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploadedKeys = append(f.uploadedKeys, key)
	return "https://vibes.s3.us-east-1.amazonaws.com/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.deletedKeys = append(f.deletedKeys, key)
	return f.deleteErr
}

type published struct {
	channel string
	event   string
	payload any
}

type fakePublisher struct {
	events []published
}

func (f *fakePublisher) Publish(channel, event string, payload any) {
	f.events = append(f.events, published{channel: channel, event: event, payload: payload})
}

func TestCreatePostWithoutImage(t *testing.T) {
	gdb, _ := newMockDB(t)
	store := &fakeStorage{}
	pub := &fakePublisher{}
	svc := NewPostService(gdb, store, pub, nil)

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:     1,
		VenueID:    2,
		VibeRating: 3,
		Image:      nil,
	})
	assert.ErrorIs(t, err, ErrImageRequired)
	assert.Empty(t, store.uploadedKeys, "nothing may be uploaded")
	assert.Empty(t, pub.events)
}

func TestCreatePostVibeRatingOutOfRange(t *testing.T) {
	gdb, _ := newMockDB(t)
	svc := NewPostService(gdb, &fakeStorage{}, &fakePublisher{}, nil)

	for _, vibe := range []int{-1, 6} {
		_, err := svc.CreatePost(context.Background(), CreatePostInput{
			UserID:     1,
			VenueID:    2,
			VibeRating: vibe,
			Image:      strings.NewReader("img"),
		})
		assert.ErrorIs(t, err, ErrInvalidVibeRating)
	}
}

func TestCreatePostUploadFailureSkipsInsert(t *testing.T) {
	gdb, mock := newMockDB(t)
	store := &fakeStorage{uploadErr: errors.New("bucket down")}
	pub := &fakePublisher{}
	svc := NewPostService(gdb, store, pub, nil)

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:     1,
		VenueID:    2,
		VibeRating: 4,
		Filename:   "shot.jpg",
		Image:      strings.NewReader("img"),
	})
	require.Error(t, err)
	assert.Empty(t, pub.events)
	assert.NoError(t, mock.ExpectationsWereMet(), "no SQL may run after a failed upload")
}

func TestCreatePostPublishesJoinedPost(t *testing.T) {
	gdb, mock := newMockDB(t)
	store := &fakeStorage{}
	pub := &fakePublisher{}
	svc := NewPostService(gdb, store, pub, nil)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `posts`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT (.+) FROM `posts`").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_id", "venue_id", "image_url", "caption", "vibe_rating", "created_at"}).
			AddRow(5, 1, 2, "https://vibes.s3.us-east-1.amazonaws.com/posts/x.jpg", "great night", 4, now))
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "profile_image_url"}).
			AddRow(1, "ana", ""))
	mock.ExpectQuery("SELECT (.+) FROM `venues`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address"}).
			AddRow(2, "The Spot", "1 Main St"))

	post, err := svc.CreatePost(context.Background(), CreatePostInput{
		UserID:     1,
		VenueID:    2,
		Caption:    "great night",
		VibeRating: 4,
		Filename:   "x.jpg",
		Image:      strings.NewReader("img"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(5), post.ID)
	require.NotNil(t, post.User)
	assert.Equal(t, "ana", post.User.Username)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "venue-2", pub.events[0].channel)
	assert.Equal(t, "new-post", pub.events[0].event)
	got, ok := pub.events[0].payload.(*model.Post)
	require.True(t, ok)
	assert.Equal(t, post.ID, got.ID, "realtime payload carries the same post as the response")

	require.Len(t, store.uploadedKeys, 1)
	assert.True(t, strings.HasPrefix(store.uploadedKeys[0], "posts/"))
	assert.True(t, strings.HasSuffix(store.uploadedKeys[0], "-x.jpg"))
}

func TestDeletePostNotOwned(t *testing.T) {
	gdb, mock := newMockDB(t)
	store := &fakeStorage{}
	pub := &fakePublisher{}
	svc := NewPostService(gdb, store, pub, nil)

	mock.ExpectQuery("SELECT (.+) FROM `posts`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.DeletePost(context.Background(), 1, 77)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, store.deletedKeys, "object must be untouched")
	assert.Empty(t, pub.events)
}

func TestDeletePostRowAuthoritativeOverStorage(t *testing.T) {
	gdb, mock := newMockDB(t)
	store := &fakeStorage{deleteErr: errors.New("object store down")}
	pub := &fakePublisher{}
	svc := NewPostService(gdb, store, pub, nil)

	mock.ExpectQuery("SELECT (.+) FROM `posts`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "venue_id", "image_url"}).
			AddRow(8, 1, 2, "https://vibes.s3.us-east-1.amazonaws.com/posts/123-y.jpg"))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `posts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.DeletePost(context.Background(), 1, 8)
	require.NoError(t, err, "row delete wins even when the object delete fails")

	require.Len(t, store.deletedKeys, 1)
	assert.Equal(t, "posts/123-y.jpg", store.deletedKeys[0])

	require.Len(t, pub.events, 1)
	assert.Equal(t, "venue-2", pub.events[0].channel)
	assert.Equal(t, "delete-post", pub.events[0].event)
	assert.Equal(t, uint64(8), pub.events[0].payload)
}
