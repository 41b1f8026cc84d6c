package handler

import (
	"errors"
	"net/http"
	"strconv"

	"spill/internal/service"

	"github.com/gin-gonic/gin"
)

type FriendshipHandler struct {
	svc *service.FriendshipService
}

func NewFriendshipHandler(svc *service.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{svc: svc}
}

type friendReq struct {
	FolloweeID uint64 `json:"followee_id" binding:"required"`
	Action     string `json:"action" binding:"required,oneof=follow unfollow"`
}

// Follow flips the relation in the requested direction, idempotently.
func (h *FriendshipHandler) Follow(c *gin.Context) {
	var req friendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}
	uid := userIDFromCtx(c)
	var (
		changed bool
		err     error
	)
	if req.Action == "follow" {
		changed, err = h.svc.Follow(c.Request.Context(), uid, req.FolloweeID)
	} else {
		changed, err = h.svc.Unfollow(c.Request.Context(), uid, req.FolloweeID)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSelfFriendship):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot follow yourself"})
		case errors.Is(err, service.ErrInvalidUserID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

func (h *FriendshipHandler) ListFollowings(c *gin.Context) {
	cursor, _ := strconv.ParseUint(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))
	rows, next, err := h.svc.ListFollowings(c.Request.Context(), userIDFromCtx(c), cursor, limit)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": rows, "next_cursor": next})
}

func (h *FriendshipHandler) ListFollowers(c *gin.Context) {
	cursor, _ := strconv.ParseUint(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.Query("limit"))
	rows, next, err := h.svc.ListFollowers(c.Request.Context(), userIDFromCtx(c), cursor, limit)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": rows, "next_cursor": next})
}
