package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"connectn/internal/config"
	"connectn/internal/game"
	"connectn/internal/logging"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errQuit = errors.New("quit")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(os.Stdin, os.Stdout, *cfg, log); err != nil {
		log.Error("play", zap.Error(err))
		os.Exit(1)
	}
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) line(q string) (string, error) {
	fmt.Fprint(p.out, q)
	s, err := p.in.ReadString('\n')
	s = strings.TrimSpace(s)
	if err != nil && (err != io.EOF || s == "") {
		return "", errQuit
	}
	if s == "q" {
		return "", errQuit
	}
	return s, nil
}

// number keeps asking until the answer parses and ok accepts it.
func (p *prompter) number(q string, def int, ok func(int) bool) (int, error) {
	for {
		s, err := p.line(fmt.Sprintf("%s [%d]: ", q, def))
		if err != nil {
			return 0, err
		}
		if s == "" {
			return def, nil
		}
		n, err := strconv.Atoi(s)
		if err == nil && ok(n) {
			return n, nil
		}
		fmt.Fprintln(p.out, "Invalid value, try again.")
	}
}

// askConfig is the prompt-driven intake for a new game. Each answer is
// re-prompted until it fits the limits, so GameConfig only sees valid values.
func askConfig(p *prompter, cfg config.Config) (game.Config, error) {
	l := cfg.Limits
	def := cfg.DefaultGame()
	players, err := p.number(fmt.Sprintf("Number of players (%d-%d)", l.MinPlayers, l.MaxPlayers),
		def.PlayerCount, func(n int) bool { return n >= l.MinPlayers && n <= l.MaxPlayers })
	if err != nil {
		return game.Config{}, err
	}
	size, err := p.number(fmt.Sprintf("Board size (%d-%d)", l.MinBoardSize, l.MaxBoardSize),
		def.BoardSize, func(n int) bool { return n >= l.MinBoardSize && n <= l.MaxBoardSize })
	if err != nil {
		return game.Config{}, err
	}
	connect := def.ConnectCount
	if connect > size {
		connect = size
	}
	connect, err = p.number(fmt.Sprintf("Pieces in a row to win (%d-%d)", l.MinConnect, size),
		connect, func(n int) bool { return n >= l.MinConnect && n <= size })
	if err != nil {
		return game.Config{}, err
	}
	return cfg.GameConfig(size, players, connect)
}

func run(in io.Reader, out io.Writer, cfg config.Config, log *zap.Logger) error {
	p := &prompter{in: bufio.NewReader(in), out: out}

	gc, err := askConfig(p, cfg)
	if errors.Cause(err) == errQuit {
		return nil
	}
	if err != nil {
		return err
	}
	s, err := game.NewSession(gc)
	if err != nil {
		return errors.Wrap(err, "start game")
	}
	log.Debug("game started", zap.Int("board_size", gc.BoardSize), zap.Int("players", gc.PlayerCount))

	for {
		render(out, s)
		if s.Status().Kind != game.InProgress {
			again, err := p.line("New game? (y/n): ")
			if err != nil || !strings.HasPrefix(strings.ToLower(again), "y") {
				return nil
			}
			if err := s.NewGame(); err != nil {
				return err
			}
			continue
		}

		ans, err := p.line(fmt.Sprintf("Column (1-%d), n for new game, q to quit: ", gc.BoardSize))
		if err != nil {
			return nil
		}
		if ans == "n" {
			if err := s.NewGame(); err != nil {
				return err
			}
			continue
		}
		col, err := strconv.Atoi(ans)
		if err != nil || col < 1 || col > gc.BoardSize {
			fmt.Fprintln(out, "Pick a column number.")
			continue
		}
		if _, ok := game.DropRow(s.Columns(), col-1); !ok {
			fmt.Fprintln(out, "That column is full.")
			continue
		}
		// the top cell stands for its column
		if err := s.Activate(col - 1); err != nil {
			log.Debug("move rejected", zap.Int("column", col), zap.Error(err))
			fmt.Fprintln(out, errors.Cause(err))
		}
	}
}

// render draws the board: '.' empty, player number for pieces, '*' for the
// winning run.
func render(w io.Writer, s *game.Session) {
	g := s.Grid()
	n := s.Config().PlayerCount
	var b strings.Builder
	b.WriteString("\n" + s.Message() + "\n")
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			c := g.At(row, col)
			switch owner, ok := c.Owner(n); {
			case c.IsConnected:
				b.WriteString("* ")
			case ok:
				b.WriteString(strconv.Itoa(owner+1) + " ")
			default:
				b.WriteString(". ")
			}
		}
		b.WriteString("\n")
	}
	for col := 1; col <= g.Size; col++ {
		b.WriteString(strconv.Itoa(col % 10))
		b.WriteString(" ")
	}
	b.WriteString("\n")
	fmt.Fprint(w, b.String())
}
