package room

import (
	"fmt"
	"strings"
	"time"

	"connectn/internal/config"
	"connectn/internal/game"
	"connectn/internal/shared"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrRoomNotFound = errors.New("room not found")

// CreateRequest describes a new room. Zero fields take the configured defaults.
type CreateRequest struct {
	BoardSize   int      `json:"boardSize"`
	Players     int      `json:"players"`
	Connect     int      `json:"connect"`
	PlayerNames []string `json:"playerNames"`
}

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
	log   *zap.Logger
}

func NewManager(s Store, cfg config.Config, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: s, cfg: cfg, hub: nopBroadcaster{}, log: log.Named("room")}
}

func (m *Manager) SetBroadcaster(b Broadcaster) {
	if b == nil {
		b = nopBroadcaster{}
	}
	m.hub = b
}

func (m *Manager) CreateRoom(req CreateRequest) (shared.RoomState, error) {
	def := m.cfg.DefaultGame()
	if req.BoardSize == 0 {
		req.BoardSize = def.BoardSize
	}
	if req.Players == 0 {
		req.Players = def.PlayerCount
	}
	if req.Connect == 0 {
		req.Connect = def.ConnectCount
	}

	gc, err := m.cfg.GameConfig(req.BoardSize, req.Players, req.Connect)
	if err != nil {
		return shared.RoomState{}, err
	}
	s, err := game.NewSession(gc)
	if err != nil {
		return shared.RoomState{}, errors.Wrap(err, "new session")
	}

	r := &Room{
		ID:        uuid.NewString(),
		Code:      m.uniqueCode(),
		CreatedAt: time.Now(),
		session:   s,
	}
	colors := config.DefaultPlayerColors
	for i := 0; i < gc.PlayerCount; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(req.PlayerNames) && strings.TrimSpace(req.PlayerNames[i]) != "" {
			name = strings.TrimSpace(req.PlayerNames[i])
		}
		r.Players = append(r.Players, shared.Player{
			ID:    uuid.NewString(),
			Index: i,
			Name:  name,
			Color: colors[i%len(colors)],
		})
	}
	m.store.SaveRoom(r)

	m.log.Info("room created",
		zap.String("room", r.Code),
		zap.Int("board_size", gc.BoardSize),
		zap.Int("players", gc.PlayerCount),
		zap.Int("connect", gc.ConnectCount),
	)

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(), nil
}

func (m *Manager) Get(code string) (shared.RoomState, bool) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return shared.RoomState{}, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state(), true
}

// Activate plays the current player's piece into the column of cellID.
// Illegal moves come back as the game package's sentinel errors and leave
// the room unchanged.
func (m *Manager) Activate(code string, cellID int) (shared.RoomState, error) {
	return m.do(code, func(r *Room) error {
		mover := r.session.CurrentPlayer()
		if err := r.session.Activate(cellID); err != nil {
			m.log.Debug("move rejected",
				zap.String("room", code),
				zap.Int("cell", cellID),
				zap.Error(err),
			)
			return err
		}
		st := r.session.Status()
		m.log.Debug("move applied",
			zap.String("room", code),
			zap.Int("player", mover),
			zap.Int("cell", cellID),
			zap.Stringer("status", st.Kind),
		)
		if st.Kind == game.Won {
			m.log.Info("game won", zap.String("room", code), zap.Int("player", st.Winner))
		} else if st.Kind == game.Tied {
			m.log.Info("game tied", zap.String("room", code))
		}
		return nil
	})
}

// Hover toggles the drop preview for the column of cellID. Enter and leave
// must arrive in pairs.
func (m *Manager) Hover(code string, cellID int, enter bool) (shared.RoomState, error) {
	return m.do(code, func(r *Room) error {
		if enter {
			return r.session.HoverEnter(cellID)
		}
		return r.session.HoverLeave(cellID)
	})
}

func (m *Manager) NewGame(code string) (shared.RoomState, error) {
	return m.do(code, func(r *Room) error {
		if err := r.session.NewGame(); err != nil {
			return errors.Wrapf(err, "new game in room %s", code)
		}
		m.log.Info("new game", zap.String("room", code))
		return nil
	})
}

// Delete removes the room. Connected clients stay open but receive no
// further states.
func (m *Manager) Delete(code string) error {
	if _, ok := m.store.GetRoom(code); !ok {
		return errors.Wrapf(ErrRoomNotFound, "room %s", code)
	}
	m.store.DeleteRoom(code)
	m.log.Info("room deleted", zap.String("room", code))
	return nil
}

// do runs fn with the room locked and broadcasts the new state before
// releasing it, so clients see states in the order they were produced. A
// failing fn still yields the current state so callers can re-render.
//
// The broadcast holds the lock for as long as the slowest client write
// takes, up to the hub's write deadline.
func (m *Manager) do(code string, fn func(r *Room) error) (shared.RoomState, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return shared.RoomState{}, errors.Wrapf(ErrRoomNotFound, "room %s", code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := fn(r); err != nil {
		return r.state(), err
	}
	st := r.state()
	m.hub.Broadcast(code, "state", st)
	return st, nil
}

func (m *Manager) uniqueCode() string {
	for {
		code := randCode(6)
		if _, exists := m.store.GetRoom(code); !exists {
			return code
		}
	}
}

// IsIllegalMove reports whether err is a rejected user action rather than a
// fault.
func IsIllegalMove(err error) bool {
	switch errors.Cause(err) {
	case game.ErrGameOver, game.ErrCellFilled, game.ErrColumnFull, game.ErrUnknownCell:
		return true
	}
	return false
}

func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrRoomNotFound
}
