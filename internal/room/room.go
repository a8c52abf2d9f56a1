package room

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"connectn/internal/game"
	"connectn/internal/shared"
)

// Room pairs a game session with the people playing it. All access to the
// session goes through mu so each action finishes before the next starts.
type Room struct {
	mu        sync.Mutex
	ID        string
	Code      string
	Players   []shared.Player
	CreatedAt time.Time
	session   *game.Session
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
}

// state snapshots the room. Callers must hold r.mu.
func (r *Room) state() shared.RoomState {
	s := r.session
	cfg := s.Config()
	g := s.Grid()

	board := make([][]game.Cell, g.Size)
	for row := range board {
		board[row] = make([]game.Cell, g.Size)
		for col := range board[row] {
			board[row][col] = *g.At(row, col)
		}
	}

	st := shared.RoomState{
		ID:            r.ID,
		Code:          r.Code,
		Config:        cfg,
		Players:       append([]shared.Player(nil), r.Players...),
		Board:         board,
		Turn:          s.Turn(),
		CurrentPlayer: s.CurrentPlayer(),
		Status:        s.Status().Kind.String(),
		Message:       s.Message(),
		Connected:     g.ConnectedIDs(),
		OpenColumns:   game.OpenColumns(s.Columns()),
		Standings:     standings(g, cfg),
		LastMove:      s.LastMove(),
		Moves:         s.Moves(),
		CreatedAt:     r.CreatedAt,
	}
	if s.Status().Kind == game.Won {
		w := s.Status().Winner
		st.Winner = &w
		if w < len(r.Players) {
			st.Message = fmt.Sprintf("%s won!", r.Players[w].Name)
		}
	}
	return st
}

func standings(g *game.Grid, cfg game.Config) []shared.Standing {
	out := make([]shared.Standing, 0, cfg.PlayerCount)
	for p := 0; p < cfg.PlayerCount; p++ {
		out = append(out, shared.Standing{
			PlayerIndex: p,
			LongestRun:  game.LongestRun(g, p, cfg),
			Pieces:      game.Pieces(g, p, cfg),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LongestRun != out[j].LongestRun {
			return out[i].LongestRun > out[j].LongestRun
		}
		return out[i].Pieces > out[j].Pieces
	})
	return out
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
