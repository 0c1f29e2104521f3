package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"grid-snake/game/types"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when a setting is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Front ends
const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"
)

// Config holds settings loaded from .env, the environment and flags, in
// increasing order of precedence.
type Config struct {
	TileSize     int
	CanvasWidth  int
	CanvasHeight int
	TickInterval time.Duration
	Seed         uint64 // 0 picks a time based seed
	Frontend     string
	Audio        bool
	LogFile      string
}

// GridWidth is the number of tiles across the canvas.
func (c Config) GridWidth() int {
	return types.GridFromCanvas(c.CanvasWidth, c.CanvasHeight, c.TileSize).Width
}

// GridHeight is the number of tiles down the canvas.
func (c Config) GridHeight() int {
	return types.GridFromCanvas(c.CanvasWidth, c.CanvasHeight, c.TileSize).Height
}

// Load reads .env (if present) and the environment, then applies args as
// command line flags.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] could not read .env: %v", err)
	}

	cfg := Config{
		TileSize:     getEnvInt("SNAKE_TILE_SIZE", types.DefaultTileSize),
		CanvasWidth:  getEnvInt("SNAKE_CANVAS_WIDTH", types.DefaultCanvasWidth),
		CanvasHeight: getEnvInt("SNAKE_CANVAS_HEIGHT", types.DefaultCanvasHeight),
		TickInterval: parseDuration("SNAKE_TICK_INTERVAL", types.DefaultTickInterval),
		Seed:         getEnvUint64("SNAKE_SEED", 0),
		Frontend:     getEnv("SNAKE_FRONTEND", FrontendRaylib),
		Audio:        getEnv("SNAKE_AUDIO", "0") == "1",
		LogFile:      getEnv("SNAKE_LOG_FILE", ""),
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	speed := fs.Int("speed", int(cfg.TickInterval/time.Millisecond), "Game speed in milliseconds between ticks (lower = faster)")
	fs.IntVar(&cfg.TileSize, "tile", cfg.TileSize, "Tile size in pixels")
	fs.IntVar(&cfg.CanvasWidth, "width", cfg.CanvasWidth, "Canvas width in pixels")
	fs.IntVar(&cfg.CanvasHeight, "height", cfg.CanvasHeight, "Canvas height in pixels")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Food placement seed (0 = random)")
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Front end: raylib or terminal")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "Enable sound effects")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	// -speed only overrides the environment when given explicitly.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "speed" {
			cfg.TickInterval = time.Duration(*speed) * time.Millisecond
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and that the canvas yields a playable grid.
func (c Config) Validate() error {
	if c.TileSize <= 0 || c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("%w: sizes must be positive (tile=%d canvas=%dx%d)",
			ErrInvalidConfig, c.TileSize, c.CanvasWidth, c.CanvasHeight)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %v", ErrInvalidConfig, c.TickInterval)
	}
	if c.Frontend != FrontendRaylib && c.Frontend != FrontendTerminal {
		return fmt.Errorf("%w: unknown front end %q", ErrInvalidConfig, c.Frontend)
	}
	if c.GridWidth() < types.MinGridWidth || c.GridHeight() < types.MinGridHeight {
		return fmt.Errorf("%w: grid %dx%d is too small", ErrInvalidConfig, c.GridWidth(), c.GridHeight())
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

func getEnvUint64(key string, def uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Printf("[WARN] %s=%q is not an unsigned number, using %d", key, v, def)
		return def
	}
	return n
}

func parseDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a duration, using %v", key, v, def)
		return def
	}
	return d
}
