package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the tunables of a run. Zero values are never valid; start
// from Default or Load.
type Config struct {
	ArenaWidth  float64
	ArenaHeight float64
	TickRate    float64 // simulation ticks per second
	Seed        int64

	WaveDelay            float64 // seconds between wave announcement and spawn
	AutoFireInterval     float64 // seconds between auto-fire rounds
	MaxPlacementAttempts int

	RegenerateObstaclesEachWave bool
}

// Default returns the stock game settings
func Default() Config {
	return Config{
		ArenaWidth:           800,
		ArenaHeight:          600,
		TickRate:             60,
		Seed:                 1,
		WaveDelay:            2,
		AutoFireInterval:     0.125,
		MaxPlacementAttempts: 1000,
	}
}

// Load reads an optional .env file (or the given files), overlays any
// ARENA_* environment variables on Default, and clamps the result.
// A missing env file is not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Default()
	var err error
	if cfg.ArenaWidth, err = envFloat("ARENA_WIDTH", cfg.ArenaWidth); err != nil {
		return Config{}, err
	}
	if cfg.ArenaHeight, err = envFloat("ARENA_HEIGHT", cfg.ArenaHeight); err != nil {
		return Config{}, err
	}
	if cfg.TickRate, err = envFloat("ARENA_TICK_RATE", cfg.TickRate); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = envInt64("ARENA_SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.WaveDelay, err = envFloat("ARENA_WAVE_DELAY", cfg.WaveDelay); err != nil {
		return Config{}, err
	}
	if cfg.AutoFireInterval, err = envFloat("ARENA_AUTOFIRE_INTERVAL", cfg.AutoFireInterval); err != nil {
		return Config{}, err
	}
	attempts, err := envInt64("ARENA_MAX_PLACEMENT_ATTEMPTS", int64(cfg.MaxPlacementAttempts))
	if err != nil {
		return Config{}, err
	}
	cfg.MaxPlacementAttempts = int(attempts)
	if cfg.RegenerateObstaclesEachWave, err = envBool("ARENA_REGENERATE_OBSTACLES", cfg.RegenerateObstaclesEachWave); err != nil {
		return Config{}, err
	}

	cfg.Clamp()
	log.Printf("Config: arena %.0fx%.0f, %.0f ticks/s, seed %d", cfg.ArenaWidth, cfg.ArenaHeight, cfg.TickRate, cfg.Seed)
	return cfg, nil
}

// Clamp enforces hard safety bounds in place. The arena must stay large
// enough for the largest obstacle plus the hero keep-out.
func (c *Config) Clamp() {
	c.ArenaWidth = clampFloat(c.ArenaWidth, 400, 4096)
	c.ArenaHeight = clampFloat(c.ArenaHeight, 300, 4096)
	c.TickRate = clampFloat(c.TickRate, 10, 240)
	c.WaveDelay = clampFloat(c.WaveDelay, 0, 30)
	c.AutoFireInterval = clampFloat(c.AutoFireInterval, 0.01, 2)
	c.MaxPlacementAttempts = clampInt(c.MaxPlacementAttempts, 10, 100000)
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func clampFloat(v, minV, maxV float64) float64 {
	if math.IsNaN(v) {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

func envFloat(key string, def float64) (float64, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func envInt64(key string, def int64) (int64, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func envBool(key string, def bool) (bool, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}
