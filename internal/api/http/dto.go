package http

import "connectn/internal/shared"

// CreateRoomRequest is the payload for POST /api/rooms. Zero values fall back
// to the server defaults.
type CreateRoomRequest struct {
	BoardSize   int      `json:"boardSize" binding:"omitempty,min=1"`
	Players     int      `json:"players" binding:"omitempty,min=1"`
	Connect     int      `json:"connect" binding:"omitempty,min=1"`
	PlayerNames []string `json:"playerNames" binding:"omitempty,max=5,dive,max=32"`
}

// ActivateRequest represents a click on a cell.
type ActivateRequest struct {
	CellID *int `json:"cellId" binding:"required"`
}

// HoverRequest represents a hover enter (Enter=true) or leave on a cell.
type HoverRequest struct {
	CellID *int `json:"cellId" binding:"required"`
	Enter  bool `json:"enter"`
}

type ActivateResponse struct {
	Accepted bool             `json:"accepted"`
	Reason   string           `json:"reason,omitempty"`
	Room     shared.RoomState `json:"room"`
}
