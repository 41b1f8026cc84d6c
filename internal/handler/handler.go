package handler

import (
	"net/http"

	"spill/internal/middleware"
	"spill/internal/pkg"

	"github.com/gin-gonic/gin"
)

func userIDFromCtx(c *gin.Context) uint64 {
	if v, ok := c.Get(middleware.ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}

// serverError hides internals from the client and logs them instead.
func serverError(c *gin.Context, err error) {
	pkg.Log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
