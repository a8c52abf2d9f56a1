package game

import "fmt"

// Session runs one game from the first drop to a win or tie. It is not safe
// for concurrent use; callers serialise actions.
type Session struct {
	cfg    Config
	grid   *Grid
	cols   ColumnView
	turn   int
	status Status
	last   int
	moves  int
}

// NewSession starts a fresh game. cfg is expected to be validated already.
func NewSession(cfg Config) (*Session, error) {
	s := &Session{cfg: cfg}
	if err := s.NewGame(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame throws the board away and rebuilds it along with its column view.
func (s *Session) NewGame() error {
	g, err := NewGrid(s.cfg.BoardSize)
	if err != nil {
		return err
	}
	s.grid = g
	s.cols = DeriveTransposedView(g)
	s.turn = 0
	s.status = Status{Kind: InProgress}
	s.last = -1
	s.moves = 0
	return nil
}

// Activate handles a click on cellID. Rejected activations leave the session
// untouched and report why.
func (s *Session) Activate(cellID int) error {
	if s.status.Kind != InProgress {
		return ErrGameOver
	}
	c, err := s.grid.Cell(cellID)
	if err != nil {
		return err
	}
	if c.IsFilled {
		return ErrCellFilled
	}

	mover := s.turn
	if !ApplyMove(s.grid, s.cols, cellID, mover) {
		return ErrColumnFull
	}
	s.turn++
	s.moves++
	s.last = cellID

	switch {
	case CheckWinner(s.grid, s.cols, mover, s.cfg):
		s.status = Status{Kind: Won, Winner: mover % s.cfg.PlayerCount}
	case s.grid.Full():
		s.status = Status{Kind: Tied}
	}
	return nil
}

func (s *Session) HoverEnter(cellID int) error { return s.hover(cellID) }

func (s *Session) HoverLeave(cellID int) error { return s.hover(cellID) }

func (s *Session) hover(cellID int) error {
	if _, err := s.grid.Cell(cellID); err != nil {
		return err
	}
	TogglePreview(s.cols, cellID)
	return nil
}

func (s *Session) Config() Config { return s.cfg }
func (s *Session) Grid() *Grid { return s.grid }
func (s *Session) Status() Status { return s.status }
func (s *Session) Turn() int { return s.turn }
func (s *Session) Moves() int { return s.moves }
func (s *Session) Columns() ColumnView { return s.cols }

// LastMove is the id of the most recently clicked cell, or -1.
func (s *Session) LastMove() int { return s.last }

// CurrentPlayer is the index of the player to move next.
func (s *Session) CurrentPlayer() int { return s.turn % s.cfg.PlayerCount }

// Message is the header text shown above the board.
func (s *Session) Message() string {
	switch s.status.Kind {
	case Won:
		return fmt.Sprintf("Player %d won!", s.status.Winner+1)
	case Tied:
		return "It's a tie!"
	}
	return fmt.Sprintf("Player %d's turn", s.CurrentPlayer()+1)
}
