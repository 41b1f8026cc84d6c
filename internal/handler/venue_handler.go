package handler

import (
	"errors"
	"net/http"
	"strconv"

	"spill/internal/service"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	svc *service.VenueService
}

func NewVenueHandler(svc *service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

// ListNearby returns venues ordered by distance to the caller's location.
func (h *VenueHandler) ListNearby(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid lat/lng"})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	venues, err := h.svc.ListNearby(c.Request.Context(), lat, lng, limit)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, venues)
}

func (h *VenueHandler) Checkin(c *gin.Context) {
	venueID, err := strconv.ParseUint(c.Param("venueId"), 10, 64)
	if err != nil || venueID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid venue id"})
		return
	}

	checkin, err := h.svc.Checkin(c.Request.Context(), userIDFromCtx(c), venueID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Venue not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, checkin)
}

// CheckinHistory lists the venue's recorded checkins, newest first.
func (h *VenueHandler) CheckinHistory(c *gin.Context) {
	venueID, err := strconv.ParseUint(c.Param("venueId"), 10, 64)
	if err != nil || venueID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid venue id"})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	list, err := h.svc.CheckinHistory(c.Request.Context(), venueID, limit)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Venue not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
