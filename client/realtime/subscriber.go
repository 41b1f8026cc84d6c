// Package realtime keeps a venue room subscription open and feeds incoming
// events straight into the client store, no refetching.
package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"spill/client/store"
	"spill/internal/model"

	"github.com/gorilla/websocket"
)

type Subscriber struct {
	conn  *websocket.Conn
	store *store.Store

	mu     sync.Mutex
	joined uint64 // currently joined venue, 0 when none
	closed bool
}

type clientMessage struct {
	Event   string `json:"event"`
	VenueID uint64 `json:"venueId"`
}

type serverEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Connect dials the websocket endpoint with the bearer token as a query
// parameter and starts the read loop.
func Connect(ctx context.Context, wsURL, token string, st *store.Store) (*Subscriber, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL+"?token="+token, nil)
	if err != nil {
		return nil, err
	}
	s := &Subscriber{conn: conn, store: st}
	go s.readLoop()
	return s, nil
}

func (s *Subscriber) JoinVenue(venueID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.joined = venueID
	return s.conn.WriteJSON(clientMessage{Event: "join-venue", VenueID: venueID})
}

func (s *Subscriber) LeaveVenue(venueID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.joined == venueID {
		s.joined = 0
	}
	return s.conn.WriteJSON(clientMessage{Event: "leave-venue", VenueID: venueID})
}

func (s *Subscriber) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return s.conn.Close()
}

func (s *Subscriber) readLoop() {
	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		var ev serverEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			continue
		}
		s.handle(ev)
	}
}

// handle merges events into local state. Events for venues other than the
// joined one are ignored, matching what the venue screen renders.
func (s *Subscriber) handle(ev serverEvent) {
	s.mu.Lock()
	joined := s.joined
	s.mu.Unlock()

	switch ev.Event {
	case "new-post":
		var post model.Post
		if err := json.Unmarshal(ev.Payload, &post); err != nil {
			return
		}
		if joined != 0 && post.VenueID != joined {
			return
		}
		s.store.Dispatch(store.AddPost{Post: post})
	case "delete-post":
		var id uint64
		if err := json.Unmarshal(ev.Payload, &id); err != nil {
			return
		}
		s.store.Dispatch(store.RemovePost{ID: id})
	}
}
