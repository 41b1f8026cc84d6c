package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func newTestServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		go hub.ServeClient(conn, 1)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func join(t *testing.T, conn *websocket.Conn, hub *Hub, venueID uint64, wantSize int) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(map[string]any{"event": "join-venue", "venueId": venueID}))
	require.Eventually(t, func() bool {
		return hub.RoomSize(VenueChannel(venueID)) == wantSize
	}, time.Second, 5*time.Millisecond)
}

func TestPublishReachesJoinedClient(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)
	conn := dial(t, srv)

	join(t, conn, hub, 9, 1)

	hub.Publish(VenueChannel(9), "new-post", map[string]any{"id": 123})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev struct {
		Event   string          `json:"event"`
		Payload json.RawMessage `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(raw, &ev))
	assert.Equal(t, "new-post", ev.Event)
	assert.Contains(t, string(ev.Payload), "123")
}

func TestLateSubscriberMissesEvent(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)

	// published into an empty room: gone for good
	hub.Publish(VenueChannel(5), "new-post", map[string]any{"id": 1})

	conn := dial(t, srv)
	join(t, conn, hub, 5, 1)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "no replay: nothing should arrive")
}

func TestLeaveStopsDelivery(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)
	conn := dial(t, srv)

	join(t, conn, hub, 3, 1)

	require.NoError(t, conn.WriteJSON(map[string]any{"event": "leave-venue", "venueId": 3}))
	require.Eventually(t, func() bool {
		return hub.RoomSize(VenueChannel(3)) == 0
	}, time.Second, 5*time.Millisecond)

	hub.Publish(VenueChannel(3), "delete-post", 77)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestPublishOnlyTargetsItsRoom(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)
	connA := dial(t, srv)
	connB := dial(t, srv)

	join(t, connA, hub, 1, 1)
	join(t, connB, hub, 2, 1)

	hub.Publish(VenueChannel(1), "new-post", map[string]any{"id": 10})

	require.NoError(t, connA.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := connA.ReadMessage()
	require.NoError(t, err)

	require.NoError(t, connB.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err = connB.ReadMessage()
	assert.Error(t, err, "other room must stay quiet")
}

func TestDisconnectDropsMembership(t *testing.T) {
	hub := NewHub()
	srv := newTestServer(t, hub)
	conn := dial(t, srv)

	join(t, conn, hub, 4, 1)
	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return hub.RoomSize(VenueChannel(4)) == 0
	}, time.Second, 5*time.Millisecond)
}
