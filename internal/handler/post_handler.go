package handler

import (
	"errors"
	"net/http"
	"strconv"

	"spill/internal/service"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 5 << 20 // 5MB

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// Create accepts a multipart form: image file, venueId, caption, vibeRating.
func (h *PostHandler) Create(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image is required"})
		return
	}
	if file.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image too large"})
		return
	}

	venueID, err := strconv.ParseUint(c.PostForm("venueId"), 10, 64)
	if err != nil || venueID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid venue id"})
		return
	}
	vibeRating, err := strconv.Atoi(c.PostForm("vibeRating"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid vibe rating"})
		return
	}

	src, err := file.Open()
	if err != nil {
		serverError(c, err)
		return
	}
	defer src.Close()

	post, err := h.svc.CreatePost(c.Request.Context(), service.CreatePostInput{
		UserID:      userIDFromCtx(c),
		VenueID:     venueID,
		Caption:     c.PostForm("caption"),
		VibeRating:  vibeRating,
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Image:       src,
	})
	if err != nil {
		if errors.Is(err, service.ErrImageRequired) || errors.Is(err, service.ErrInvalidVibeRating) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListByVenue returns the venue's posts, newest first.
func (h *PostHandler) ListByVenue(c *gin.Context) {
	venueID, err := strconv.ParseUint(c.Param("venueId"), 10, 64)
	if err != nil || venueID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid venue id"})
		return
	}

	posts, err := h.svc.ListVenuePosts(venueID)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Delete removes the caller's post. Absent and not-owned both read as 404.
func (h *PostHandler) Delete(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil || postID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid post id"})
		return
	}

	if err := h.svc.DeletePost(c.Request.Context(), userIDFromCtx(c), postID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
