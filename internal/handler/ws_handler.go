package handler

import (
	"net/http"

	"spill/internal/pkg"
	"spill/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Serve upgrades the authenticated request and hands the connection to the hub.
func (h *WSHandler) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		pkg.Log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	go h.hub.ServeClient(conn, userIDFromCtx(c))
}
