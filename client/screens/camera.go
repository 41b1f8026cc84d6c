package screens

import (
	"bytes"
	"context"
	"errors"

	"spill/client/api"
	"spill/client/store"
)

var (
	ErrPermissionDenied = errors.New("camera and location permission required")
	ErrNoPhoto          = errors.New("no photo captured")
	ErrNoVenue          = errors.New("no venue selected")
)

// Camera gates capture behind camera and location permission, then composes
// the create-post upload.
type Camera struct {
	api   *api.Client
	store *store.Store

	cameraGranted   bool
	locationGranted bool
	photo           []byte
	filename        string
}

func NewCamera(c *api.Client, st *store.Store) *Camera {
	return &Camera{api: c, store: st}
}

func (c *Camera) SetPermissions(camera, location bool) {
	c.cameraGranted = camera
	c.locationGranted = location
}

// Capture stores the shot; both permissions must be granted first.
func (c *Camera) Capture(photo []byte, filename string) error {
	if !c.cameraGranted || !c.locationGranted {
		return ErrPermissionDenied
	}
	c.photo = photo
	c.filename = filename
	return nil
}

func (c *Camera) Discard() {
	c.photo = nil
	c.filename = ""
}

// Post uploads the captured photo against the current venue and returns the
// venue id to navigate to on success.
func (c *Camera) Post(ctx context.Context, caption string, vibeRating int) (uint64, error) {
	if c.photo == nil {
		return 0, ErrNoPhoto
	}
	venue := c.store.State().Venues.Current
	if venue == nil {
		return 0, ErrNoVenue
	}

	post, err := c.api.CreatePost(ctx, api.CreatePostInput{
		VenueID:    venue.ID,
		Caption:    caption,
		VibeRating: vibeRating,
		Filename:   c.filename,
		Image:      bytes.NewReader(c.photo),
	})
	if err != nil {
		return 0, err
	}

	c.store.Dispatch(store.AddPost{Post: *post})
	c.Discard()
	return venue.ID, nil
}
