package router

import (
	"net/http"

	"spill/internal/handler"
	"spill/internal/middleware"
	"spill/internal/realtime"
	"spill/internal/service"

	"github.com/gin-gonic/gin"
)

// Deps carries everything the routes need; main wires them once.
type Deps struct {
	Auth       *service.AuthService
	Posts      *service.PostService
	Venues     *service.VenueService
	Engagement *service.EngagementService
	Friends    *service.FriendshipService
	Hub        *realtime.Hub
}

func InitRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20

	auth := handler.NewAuthHandler(d.Auth)
	post := handler.NewPostHandler(d.Posts)
	venue := handler.NewVenueHandler(d.Venues)
	engagement := handler.NewEngagementHandler(d.Engagement)
	friend := handler.NewFriendshipHandler(d.Friends)
	ws := handler.NewWSHandler(d.Hub)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(), auth.Me)
	}

	postGroup := r.Group("/posts")
	postGroup.Use(middleware.AuthMiddleware())
	{
		postGroup.POST("", post.Create)
		postGroup.GET("/venue/:venueId", post.ListByVenue)
		postGroup.DELETE("/:postId", post.Delete)
		postGroup.POST("/:postId/like", engagement.Like)
		postGroup.DELETE("/:postId/like", engagement.Unlike)
		postGroup.GET("/:postId/comments", engagement.ListComments)
		postGroup.POST("/:postId/comments", engagement.AddComment)
	}

	venueGroup := r.Group("/venues")
	venueGroup.Use(middleware.AuthMiddleware())
	{
		venueGroup.GET("", venue.ListNearby)
		venueGroup.POST("/:venueId/checkin", venue.Checkin)
		venueGroup.GET("/:venueId/checkins", venue.CheckinHistory)
	}

	friendGroup := r.Group("/friends")
	friendGroup.Use(middleware.AuthMiddleware())
	{
		friendGroup.POST("", friend.Follow)
		friendGroup.GET("/followings", friend.ListFollowings)
		friendGroup.GET("/followers", friend.ListFollowers)
	}

	r.GET("/ws", middleware.WSAuthMiddleware(), ws.Serve)

	return r
}
