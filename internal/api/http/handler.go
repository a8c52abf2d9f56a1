package http

import (
	"io"
	"net/http"

	"connectn/internal/config"
	"connectn/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateRoomHandler starts a new room and its first game.
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		st, err := rm.CreateRoom(room.CreateRequest{
			BoardSize:   req.BoardSize,
			Players:     req.Players,
			Connect:     req.Connect,
			PlayerNames: req.PlayerNames,
		})
		if err != nil {
			if config.IsInvalidGame(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"roomCode": st.Code, "room": st})
	}
}

func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, ok := rm.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": st})
	}
}

func DeleteRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rm.Delete(c.Param("code")); err != nil {
			if room.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ActivateHandler plays a piece into the column of the clicked cell. Illegal
// clicks are not errors: the response says accepted=false and carries the
// unchanged room.
func ActivateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ActivateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cellId required"})
			return
		}
		st, err := rm.Activate(c.Param("code"), *req.CellID)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, ActivateResponse{Accepted: true, Room: st})
		case room.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		case room.IsIllegalMove(err):
			c.JSON(http.StatusOK, ActivateResponse{Accepted: false, Reason: errors.Cause(err).Error(), Room: st})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func HoverHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req HoverRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cellId required"})
			return
		}
		st, err := rm.Hover(c.Param("code"), *req.CellID, req.Enter)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"room": st})
		case room.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		case room.IsIllegalMove(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": errors.Cause(err).Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}

func NewGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		st, err := rm.NewGame(c.Param("code"))
		if err != nil {
			if room.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": st})
	}
}
