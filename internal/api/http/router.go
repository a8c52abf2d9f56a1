package http

import (
	"connectn/internal/api/ws"
	"connectn/internal/config"
	"connectn/internal/room"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log.Named("http")))

	r.GET("/healthz", HealthHandler)

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	api := r.Group("/api")
	api.GET("/config/defaults", GetDefaultsHandler(cfg))

	rooms := api.Group("/rooms")
	rooms.POST("", CreateRoomHandler(rm))
	rooms.GET("/:code", GetRoomHandler(rm))
	rooms.DELETE("/:code", DeleteRoomHandler(rm))
	rooms.POST("/:code/activate", ActivateHandler(rm))
	rooms.POST("/:code/hover", HoverHandler(rm))
	rooms.POST("/:code/new-game", NewGameHandler(rm))

	return r
}
