package screens

import (
	"context"
	"math"

	"spill/client/api"
	"spill/client/realtime"
	"spill/client/store"
)

// Venue subscribes to the venue's room while mounted and merges realtime
// events into local state without refetching.
type Venue struct {
	api     *api.Client
	store   *store.Store
	rt      *realtime.Subscriber
	venueID uint64
}

func NewVenue(c *api.Client, st *store.Store, rt *realtime.Subscriber, venueID uint64) *Venue {
	return &Venue{api: c, store: st, rt: rt, venueID: venueID}
}

func (v *Venue) Mount(ctx context.Context) error {
	if err := v.loadPosts(ctx); err != nil {
		return err
	}
	return v.rt.JoinVenue(v.venueID)
}

func (v *Venue) Unmount() {
	_ = v.rt.LeaveVenue(v.venueID)
}

// Refresh is the only reconciliation path for events missed while offline.
func (v *Venue) Refresh(ctx context.Context) error {
	return v.loadPosts(ctx)
}

func (v *Venue) loadPosts(ctx context.Context) error {
	v.store.Dispatch(store.SetPostsLoading{Loading: true})
	defer v.store.Dispatch(store.SetPostsLoading{Loading: false})

	posts, err := v.api.VenuePosts(ctx, v.venueID)
	if err != nil {
		return err
	}
	v.store.Dispatch(store.SetPosts{Posts: posts})
	return nil
}

// VibeRating is the rounded mean of all loaded posts' vibe ratings for this
// venue; a mean of 3.5 rounds up to 4. Zero when no posts are loaded.
func (v *Venue) VibeRating() int {
	state := v.store.State()
	var sum, n int
	for _, p := range state.Posts.Posts {
		if p.VenueID != v.venueID {
			continue
		}
		sum += p.VibeRating
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
