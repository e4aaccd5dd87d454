// Package config loads token-bubbles settings from TOML, .env and BUBBLES_* variables
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/token-bubbles/core"
	"github.com/lixenwraith/token-bubbles/input"
	"github.com/lixenwraith/token-bubbles/market"
	"github.com/lixenwraith/token-bubbles/physics"
	"github.com/lixenwraith/token-bubbles/sizing"
)

const appName = "token-bubbles"

// Config holds token-bubbles configuration.
type Config struct {
	Data    DataConfig    `toml:"data"`
	View    ViewConfig    `toml:"view"`
	Physics PhysicsConfig `toml:"physics"`
	Log     LogConfig     `toml:"log"`
}

// DataConfig controls list files and the DexScreener client.
type DataConfig struct {
	BaseURL     string   `toml:"base_url"`
	ListsDir    string   `toml:"lists_dir"`
	List        string   `toml:"list"`
	Timeframe   string   `toml:"timeframe"` // 5m, 1h, 6h, 24h
	Refresh     string   `toml:"refresh"`   // cron spec, empty disables
	CacheTTL    Duration `toml:"cache_ttl"`
	Concurrency int      `toml:"concurrency"`
	Timeout     Duration `toml:"timeout"`
}

// ViewConfig controls presentation.
type ViewConfig struct {
	Mode  string `toml:"mode"` // change, mcap
	FPS   int    `toml:"fps"`
	Sound bool   `toml:"sound"`
	Seed  uint64 `toml:"seed"` // 0 seeds from the clock
}

// PhysicsConfig overrides simulation tuning, unset fields keep the built-in values.
type PhysicsConfig struct {
	DampingSteady   *float64 `toml:"damping_steady"`
	DampingSettling *float64 `toml:"damping_settling"`
	Restitution     *float64 `toml:"restitution"`
	MaxSpeed        *float64 `toml:"max_speed"`
	DragThreshold   *float64 `toml:"drag_threshold"`
}

// LogConfig controls the log file written while the TUI owns the terminal.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Duration decodes TOML strings such as "30s"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			BaseURL:     market.DefaultBaseURL,
			ListsDir:    "lists",
			List:        market.AllList,
			Timeframe:   core.Timeframe24h.String(),
			Refresh:     "@every 60s",
			CacheTTL:    Duration{30 * time.Second},
			Concurrency: 4,
			Timeout:     Duration{15 * time.Second},
		},
		View: ViewConfig{
			Mode:  sizing.ByChange.String(),
			FPS:   60,
			Sound: true,
		},
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(StateDir(), "bubbles.log"),
		},
	}
}

// Dir returns the token-bubbles config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, appName)
}

// StateDir returns the directory for logs.
func StateDir() string {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, appName)
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads path over the defaults, then applies .env and BUBBLES_* overrides
// An empty path reads the default location and tolerates its absence
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = Path()
	}

	if err := cfg.decodeFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Load .env file if it exists
	_ = godotenv.Load()

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overrides fields from BUBBLES_* variables
func (c *Config) ApplyEnv() error {
	c.Data.BaseURL = getEnv("BUBBLES_BASE_URL", c.Data.BaseURL)
	c.Data.ListsDir = getEnv("BUBBLES_LISTS_DIR", c.Data.ListsDir)
	c.Data.List = getEnv("BUBBLES_LIST", c.Data.List)
	c.Data.Timeframe = getEnv("BUBBLES_TIMEFRAME", c.Data.Timeframe)
	c.Data.Refresh = getEnv("BUBBLES_REFRESH", c.Data.Refresh)
	c.Data.Concurrency = getEnvAsInt("BUBBLES_CONCURRENCY", c.Data.Concurrency)
	c.View.Mode = getEnv("BUBBLES_MODE", c.View.Mode)
	c.View.FPS = getEnvAsInt("BUBBLES_FPS", c.View.FPS)
	c.View.Sound = getEnvAsBool("BUBBLES_SOUND", c.View.Sound)
	c.Log.Level = getEnv("BUBBLES_LOG_LEVEL", c.Log.Level)
	c.Log.File = getEnv("BUBBLES_LOG_FILE", c.Log.File)

	if v := os.Getenv("BUBBLES_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("BUBBLES_SEED: %w", err)
		}
		c.View.Seed = seed
	}
	for key, dst := range map[string]*Duration{
		"BUBBLES_CACHE_TTL": &c.Data.CacheTTL,
		"BUBBLES_TIMEOUT":   &c.Data.Timeout,
	} {
		if v := os.Getenv(key); v != "" {
			if err := dst.UnmarshalText([]byte(v)); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}
	return nil
}

// Validate rejects settings the application cannot run with
func (c *Config) Validate() error {
	if _, err := core.ParseTimeframe(c.Data.Timeframe); err != nil {
		return fmt.Errorf("data.timeframe: %w", err)
	}
	if _, err := sizing.ParseMode(c.View.Mode); err != nil {
		return fmt.Errorf("view.mode: %w", err)
	}
	if c.View.FPS < 1 || c.View.FPS > 240 {
		return fmt.Errorf("view.fps: %d out of range 1..240", c.View.FPS)
	}
	if c.Data.Concurrency < 1 {
		return fmt.Errorf("data.concurrency: must be positive, got %d", c.Data.Concurrency)
	}
	if c.Data.CacheTTL.Duration < 0 || c.Data.Timeout.Duration < 0 {
		return errors.New("data: durations must not be negative")
	}
	if c.Data.Refresh != "" {
		if err := market.ValidateSchedule(c.Data.Refresh); err != nil {
			return fmt.Errorf("data.refresh: %w", err)
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if err := c.ApplyPhysics(physics.DefaultParams()).Validate(); err != nil {
		return fmt.Errorf("physics: %w", err)
	}
	if t := c.Physics.DragThreshold; t != nil && *t <= 0 {
		return fmt.Errorf("physics.drag_threshold: %g must be positive", *t)
	}
	return nil
}

// Timeframe returns the parsed data.timeframe, valid after Validate
func (c *Config) Timeframe() core.Timeframe {
	tf, _ := core.ParseTimeframe(c.Data.Timeframe)
	return tf
}

// Mode returns the parsed view.mode, valid after Validate
func (c *Config) Mode() sizing.Mode {
	m, _ := sizing.ParseMode(c.View.Mode)
	return m
}

// ApplyPhysics overlays the [physics] overrides on p
func (c *Config) ApplyPhysics(p physics.Params) physics.Params {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.DampingSteady, c.Physics.DampingSteady)
	set(&p.DampingSettling, c.Physics.DampingSettling)
	set(&p.Restitution, c.Physics.Restitution)
	set(&p.MaxSpeed, c.Physics.MaxSpeed)
	return p
}

// ApplyDrag overlays the drag overrides on d
func (c *Config) ApplyDrag(d input.DragParams) input.DragParams {
	if c.Physics.DragThreshold != nil {
		d.Threshold = *c.Physics.DragThreshold
	}
	return d
}

// Write encodes the config as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save writes the config to path, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return cfg.Write(f)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
