package config

import (
	"os"
	"strconv"

	"connectn/internal/game"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidGameConfig = errors.New("invalid game configuration")

// DefaultPlayerColors are handed out to players in seat order.
var DefaultPlayerColors = []string{"red", "yellow", "green", "blue", "purple"}

type GameDefaults struct {
	BoardSize int `yaml:"board_size" json:"boardSize"`
	Players   int `yaml:"players" json:"players"`
	Connect   int `yaml:"connect" json:"connect"`
}

type Limits struct {
	MinPlayers   int `yaml:"min_players" json:"minPlayers"`
	MaxPlayers   int `yaml:"max_players" json:"maxPlayers"`
	MinBoardSize int `yaml:"min_board_size" json:"minBoardSize"`
	MaxBoardSize int `yaml:"max_board_size" json:"maxBoardSize"`
	MinConnect   int `yaml:"min_connect" json:"minConnect"`
}

type Config struct {
	HTTPAddr string       `yaml:"http_addr"`
	LogLevel string       `yaml:"log_level"`
	Game     GameDefaults `yaml:"game"`
	Limits   Limits       `yaml:"limits"`
}

func Default() Config {
	return Config{
		HTTPAddr: ":8080",
		LogLevel: "info",
		Game: GameDefaults{
			BoardSize: 10,
			Players:   3,
			Connect:   4,
		},
		Limits: Limits{
			MinPlayers:   2,
			MaxPlayers:   len(DefaultPlayerColors),
			MinBoardSize: 4,
			MaxBoardSize: 20,
			MinConnect:   2,
		},
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Load builds the config from defaults, then CONFIG_FILE (YAML) if set, then
// environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.Game.BoardSize = getenvInt("BOARD_SIZE", cfg.Game.BoardSize)
	cfg.Game.Players = getenvInt("NUM_PLAYERS", cfg.Game.Players)
	cfg.Game.Connect = getenvInt("CONNECT_COUNT", cfg.Game.Connect)
	cfg.Limits.MinBoardSize = getenvInt("MIN_BOARD_SIZE", cfg.Limits.MinBoardSize)
	cfg.Limits.MaxBoardSize = getenvInt("MAX_BOARD_SIZE", cfg.Limits.MaxBoardSize)

	if cfg.Limits.MaxPlayers > len(DefaultPlayerColors) {
		cfg.Limits.MaxPlayers = len(DefaultPlayerColors)
	}
	if _, err := cfg.GameConfig(cfg.Game.BoardSize, cfg.Game.Players, cfg.Game.Connect); err != nil {
		return nil, errors.Wrap(err, "default game settings")
	}
	return &cfg, nil
}

// GameConfig checks a requested game against the limits. The rules engine
// trusts whatever passes here.
func (c Config) GameConfig(boardSize, players, connect int) (game.Config, error) {
	l := c.Limits
	switch {
	case players < l.MinPlayers || players > l.MaxPlayers:
		return game.Config{}, errors.Wrapf(ErrInvalidGameConfig,
			"players must be between %d and %d, got %d", l.MinPlayers, l.MaxPlayers, players)
	case boardSize < l.MinBoardSize || boardSize > l.MaxBoardSize:
		return game.Config{}, errors.Wrapf(ErrInvalidGameConfig,
			"board size must be between %d and %d, got %d", l.MinBoardSize, l.MaxBoardSize, boardSize)
	case connect < l.MinConnect || connect > boardSize:
		return game.Config{}, errors.Wrapf(ErrInvalidGameConfig,
			"connect must be between %d and %d, got %d", l.MinConnect, boardSize, connect)
	}
	return game.Config{BoardSize: boardSize, PlayerCount: players, ConnectCount: connect}, nil
}

// DefaultGame is the game created when a request leaves fields unset.
func (c Config) DefaultGame() game.Config {
	return game.Config{
		BoardSize:    c.Game.BoardSize,
		PlayerCount:  c.Game.Players,
		ConnectCount: c.Game.Connect,
	}
}

// IsInvalidGame reports whether err came from GameConfig.
func IsInvalidGame(err error) bool {
	return errors.Cause(err) == ErrInvalidGameConfig
}
