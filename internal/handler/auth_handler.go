package handler

import (
	"errors"
	"net/http"

	"spill/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

type RegisterReq struct {
	Username string `json:"username" binding:"required,max=32"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register creates the account and returns a fresh token with the public
// user fields.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	res, err := h.svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": res.Token,
		"user": gin.H{
			"id":       res.User.ID,
			"username": res.User.Username,
			"email":    res.User.Email,
		},
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid params"})
		return
	}

	res, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": res.Token,
		"user": gin.H{
			"id":       res.User.ID,
			"username": res.User.Username,
			"email":    res.User.Email,
		},
	})
}

// Me returns the caller's user record. The password hash is excluded from
// serialization at the model level.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.CurrentUser(userIDFromCtx(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
