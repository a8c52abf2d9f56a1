package http

import (
	"net/http"

	"connectn/internal/config"

	"github.com/gin-gonic/gin"
)

// GetDefaultsHandler returns the default game settings and the bounds a new
// room must respect.
func GetDefaultsHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"game":   cfg.Game,
			"limits": cfg.Limits,
			"colors": config.DefaultPlayerColors,
		})
	}
}
