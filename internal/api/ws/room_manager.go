package ws

import "connectn/internal/shared"

type RoomManager interface {
	Get(roomCode string) (shared.RoomState, bool)
	Activate(roomCode string, cellID int) (shared.RoomState, error)
	Hover(roomCode string, cellID int, enter bool) (shared.RoomState, error)
	NewGame(roomCode string) (shared.RoomState, error)
}
