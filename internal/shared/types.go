package shared

import (
	"time"

	"connectn/internal/game"
)

type Player struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// RoomState is the snapshot sent to clients after every accepted action.
type RoomState struct {
	ID            string        `json:"id"`
	Code          string        `json:"code"`
	Config        game.Config   `json:"config"`
	Players       []Player      `json:"players"`
	Board         [][]game.Cell `json:"board"`
	Turn          int           `json:"turn"`
	CurrentPlayer int           `json:"currentPlayer"`
	Status        string        `json:"status"`
	Winner        *int          `json:"winner"`
	Message       string        `json:"message"`
	Connected     []int         `json:"connected"`
	OpenColumns   []int         `json:"openColumns"`
	Standings     []Standing    `json:"standings"`
	LastMove      int           `json:"lastMove"`
	Moves         int           `json:"moves"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Standing ranks a player by longest line, then by pieces on the board.
type Standing struct {
	PlayerIndex int `json:"playerIndex"`
	LongestRun  int `json:"longestRun"`
	Pieces      int `json:"pieces"`
}

// CellAction is the payload of activate and hover requests. A nil CellID
// means the client sent none.
type CellAction struct {
	CellID *int `json:"cellId"`
	Enter  bool `json:"enter"`
}
