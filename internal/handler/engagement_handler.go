package handler

import (
	"errors"
	"net/http"
	"strconv"

	"spill/internal/service"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	svc *service.EngagementService
}

type CommentReq struct {
	Body string `json:"body" binding:"required,max=500"`
}

func NewEngagementHandler(svc *service.EngagementService) *EngagementHandler {
	return &EngagementHandler{svc: svc}
}

func postIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid post id"})
		return 0, false
	}
	return id, true
}

func (h *EngagementHandler) Like(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	changed, err := h.svc.Like(c.Request.Context(), userIDFromCtx(c), postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

func (h *EngagementHandler) Unlike(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	changed, err := h.svc.Unlike(c.Request.Context(), userIDFromCtx(c), postID)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"changed": changed})
}

func (h *EngagementHandler) AddComment(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	var req CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}
	comment, err := h.svc.AddComment(c.Request.Context(), userIDFromCtx(c), postID, req.Body)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *EngagementHandler) ListComments(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		return
	}
	comments, err := h.svc.ListComments(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
