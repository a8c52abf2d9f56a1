package game

import "errors"

var (
	ErrInvalidSize = errors.New("board size must be positive")
	ErrUnknownCell = errors.New("unknown cell id")
	ErrCellFilled  = errors.New("cell already filled")
	ErrColumnFull  = errors.New("column full")
	ErrGameOver    = errors.New("game over")
)

// Cell is one square of the board. Value holds the raw turn counter of the
// move that filled it and is nil while the cell is empty.
type Cell struct {
	ID            int  `json:"id"`
	IsFilled      bool `json:"isFilled"`
	Value         *int `json:"value"`
	IsHighlighted bool `json:"isHighlighted"`
	IsConnected   bool `json:"isConnected"`
}

// Owner reduces the stored turn counter to a player index.
func (c *Cell) Owner(playerCount int) (int, bool) {
	if !c.IsFilled || c.Value == nil || playerCount <= 0 {
		return 0, false
	}
	return *c.Value % playerCount, true
}

func (c *Cell) ownedBy(player, playerCount int) bool {
	owner, ok := c.Owner(playerCount)
	return ok && owner == player%playerCount
}

func (c *Cell) fill(turn int) {
	v := turn
	c.IsFilled = true
	c.Value = &v
	c.IsHighlighted = false
}

// Config is fixed for the lifetime of a session.
type Config struct {
	BoardSize    int `json:"boardSize"`
	PlayerCount  int `json:"playerCount"`
	ConnectCount int `json:"connectCount"`
}

type StatusKind int

const (
	InProgress StatusKind = iota
	Won
	Tied
)

func (k StatusKind) String() string {
	switch k {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Tied:
		return "tied"
	}
	return "unknown"
}

// Status is the session outcome. Winner is only meaningful when Kind == Won.
type Status struct {
	Kind   StatusKind
	Winner int
}
