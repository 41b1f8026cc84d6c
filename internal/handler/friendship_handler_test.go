package handler

import (
	"net/http"
	"testing"
	"time"

	"spill/internal/middleware"
	"spill/internal/pkg"
	"spill/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newFriendRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	pkg.InitJWT("test-secret", time.Hour)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	h := NewFriendshipHandler(service.NewFriendshipService(gdb))
	r := gin.New()
	r.POST("/friends", middleware.AuthMiddleware(), h.Follow)
	return r
}

func TestFollowSelfRejected(t *testing.T) {
	r := newFriendRouter(t)
	token, err := pkg.GenerateToken(3)
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/friends",
		`{"followee_id":3,"action":"follow"}`, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot follow yourself")
}

func TestFollowRejectsUnknownAction(t *testing.T) {
	r := newFriendRouter(t)
	token, err := pkg.GenerateToken(3)
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/friends",
		`{"followee_id":4,"action":"block"}`, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
