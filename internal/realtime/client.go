package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 32
)

// Client is one websocket connection. It joins and leaves venue rooms on
// explicit client messages.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	done   chan struct{}
	userID uint64

	closeOnce sync.Once
}

type clientMessage struct {
	Event   string `json:"event"` // join-venue / leave-venue
	VenueID uint64 `json:"venueId"`
}

// ServeClient runs the read and write pumps until the connection dies.
func (h *Hub) ServeClient(conn *websocket.Conn, userID uint64) {
	c := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		done:   make(chan struct{}),
		userID: userID,
	}
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer c.close()
	c.conn.SetReadLimit(1024)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil || msg.VenueID == 0 {
			continue
		}
		switch msg.Event {
		case "join-venue":
			c.hub.join(VenueChannel(msg.VenueID), c)
		case "leave-venue":
			c.hub.leave(VenueChannel(msg.VenueID), c)
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()
	for {
		select {
		case <-c.done:
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.hub.drop(c)
		close(c.done)
		_ = c.conn.Close()
	})
}
