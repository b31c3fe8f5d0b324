package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	minBoardSize = 5
	maxBoardSize = 21
)

var (
	ErrInvalidBoardSize = errors.New("board size must be between 5 and 21")
	ErrInvalidKomi      = errors.New("komi must not be negative")
	ErrInvalidLogLevel  = errors.New("unknown log level")
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	TCPPort    string     `yaml:"tcp-port" env:"TCP_PORT" env-default:"9999"`
	HTTPPort   string     `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Game       Game       `yaml:"game"`
	Connection Connection `yaml:"connection"`
	Redis      Redis      `yaml:"redis"`
}

type Game struct {
	BoardSize int     `yaml:"board-size" env:"GAME_BOARD_SIZE" env-default:"19"`
	Komi      float64 `yaml:"komi" env:"GAME_KOMI" env-default:"7.5"`
}

// Connection holds protocol-boundary timeouts. Zero disables a timeout.
type Connection struct {
	WriteTimeout time.Duration `yaml:"write-timeout" env:"CONNECTION_WRITE_TIMEOUT" env-default:"5s"`
	IdleTimeout  time.Duration `yaml:"idle-timeout" env:"CONNECTION_IDLE_TIMEOUT" env-default:"0s"`
}

type Redis struct {
	Host         string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port         string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	ResultsLimit int64  `yaml:"results-limit" env:"REDIS_RESULTS_LIMIT" env-default:"20"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err := config.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	return config
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	if that.Game.BoardSize < minBoardSize || that.Game.BoardSize > maxBoardSize {
		return fmt.Errorf("%w: got %d", ErrInvalidBoardSize, that.Game.BoardSize)
	}

	if that.Game.Komi < 0 {
		return fmt.Errorf("%w: got %.1f", ErrInvalidKomi, that.Game.Komi)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
