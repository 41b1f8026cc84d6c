package realtime

import (
	"encoding/json"
	"fmt"
	"sync"

	"spill/internal/pkg"
)

// Publisher is the capability injected into the services that mutate posts.
// Publishing is best effort: no ack, no retry, no replay.
type Publisher interface {
	Publish(channel, event string, payload any)
}

// VenueChannel names the room for a venue.
func VenueChannel(venueID uint64) string {
	return fmt.Sprintf("venue-%d", venueID)
}

// Hub keeps room membership and fans events out to subscribed clients.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
	}
}

type serverEvent struct {
	Event   string `json:"event"`
	Payload any    `json:"payload"`
}

// Publish marshals once and hands the frame to every member of the room.
// Slow clients get dropped rather than block the caller.
func (h *Hub) Publish(channel, event string, payload any) {
	frame, err := json.Marshal(serverEvent{Event: event, Payload: payload})
	if err != nil {
		pkg.Log.Error().Err(err).Str("event", event).Msg("realtime marshal failed")
		return
	}

	h.mu.RLock()
	members := make([]*Client, 0, len(h.rooms[channel]))
	for c := range h.rooms[channel] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	for _, c := range members {
		select {
		case c.send <- frame:
		case <-c.done:
		default:
			// buffer full; client is too slow, cut it loose
			go c.close()
		}
	}
}

func (h *Hub) join(channel string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[channel]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[channel] = room
	}
	room[c] = struct{}{}
}

func (h *Hub) leave(channel string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(channel, c)
}

func (h *Hub) drop(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for channel := range h.rooms {
		h.removeLocked(channel, c)
	}
}

func (h *Hub) removeLocked(channel string, c *Client) {
	if room, ok := h.rooms[channel]; ok {
		delete(room, c)
		if len(room) == 0 {
			delete(h.rooms, channel)
		}
	}
}

// RoomSize reports current membership; used by tests and the health endpoint.
func (h *Hub) RoomSize(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[channel])
}
