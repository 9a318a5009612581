package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Color modes for clue rendering.
const (
	ColorAlways = "always"
	ColorNever  = "never"
	ColorAuto   = "auto"
)

// Secret selection modes.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// Config is the root application configuration.
type Config struct {
	Log  LogConfig
	Game GameConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"warn"`
	Format string `env:"LOG_FORMAT" env-default:"console"` // console | json
}

// GameConfig holds gameplay and terminal settings.
type GameConfig struct {
	Color       string `env:"WV_COLOR"         env-default:"always"`
	WinExitCode int    `env:"WV_WIN_EXIT_CODE" env-default:"1"`
	Seed        uint64 `env:"WV_SEED"          env-default:"0"` // 0 picks a random seed
	Mode        string `env:"WV_MODE"          env-default:"random"`
	DailySalt   string `env:"WV_DAILY_SALT"    env-default:"words_virtuoso"`
}

// Load reads an optional .env file into the environment, then decodes the
// environment into a Config and validates it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error

	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if !slices.Contains([]string{"console", "json"}, c.Log.Format) {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.Log.Format))
	}

	c.Game.Color = strings.ToLower(strings.TrimSpace(c.Game.Color))
	if !slices.Contains([]string{ColorAlways, ColorNever, ColorAuto}, c.Game.Color) {
		errs = append(errs, fmt.Errorf("WV_COLOR must be always, never or auto, got %q", c.Game.Color))
	}

	c.Game.Mode = strings.ToLower(strings.TrimSpace(c.Game.Mode))
	if !slices.Contains([]string{ModeRandom, ModeDaily}, c.Game.Mode) {
		errs = append(errs, fmt.Errorf("WV_MODE must be random or daily, got %q", c.Game.Mode))
	}

	if c.Game.WinExitCode < 0 || c.Game.WinExitCode > 125 {
		errs = append(errs, fmt.Errorf("WV_WIN_EXIT_CODE must be in 0..125, got %d", c.Game.WinExitCode))
	}

	return errors.Join(errs...)
}
