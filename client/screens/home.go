// Package screens holds the screen controllers: the stateful glue between
// the store, the API client, and the realtime subscription. Rendering is up
// to whatever view layer observes the store.
package screens

import (
	"context"

	"spill/client/api"
	"spill/client/store"
)

type Location struct {
	Lat float64
	Lng float64
}

// Home toggles between list and map presentation of nearby venues and
// refetches whenever the device location changes.
type Home struct {
	api     *api.Client
	store   *store.Store
	mapView bool
	loc     *Location
}

func NewHome(c *api.Client, st *store.Store) *Home {
	return &Home{api: c, store: st}
}

// SetLocation records the new device location and refetches venues.
func (h *Home) SetLocation(ctx context.Context, loc Location) error {
	h.loc = &loc
	return h.fetchVenues(ctx)
}

// Refresh is pull-to-refresh: a manual refetch at the last known location.
func (h *Home) Refresh(ctx context.Context) error {
	if h.loc == nil {
		return nil
	}
	return h.fetchVenues(ctx)
}

func (h *Home) ToggleMapView() bool {
	h.mapView = !h.mapView
	return h.mapView
}

func (h *Home) MapView() bool {
	return h.mapView
}

func (h *Home) fetchVenues(ctx context.Context) error {
	h.store.Dispatch(store.SetVenuesLoading{Loading: true})
	defer h.store.Dispatch(store.SetVenuesLoading{Loading: false})

	venues, err := h.api.NearbyVenues(ctx, h.loc.Lat, h.loc.Lng)
	if err != nil {
		return err
	}
	h.store.Dispatch(store.SetVenues{Venues: venues})
	return nil
}
