package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"shape-studio/log"

	"github.com/kelseyhightower/envconfig"
)

const ConfigFileName = "config.json"

// envPrefix means every field can be overridden as SHAPESTUDIO_<NAME>.
const envPrefix = "shapestudio"

// configDirEnv overrides the config directory, mainly for tests.
const configDirEnv = "SHAPESTUDIO_CONFIG_DIR"

// Config holds the tunable defaults for both variants. Values from the
// config file are applied first, environment variables second.
type Config struct {
	// StudioTickMs is the studio spawn interval in milliseconds.
	StudioTickMs int `json:"studio_tick_ms" envconfig:"STUDIO_TICK_MS"`
	// GalleryTickMs is the gallery spawn interval in milliseconds.
	GalleryTickMs int `json:"gallery_tick_ms" envconfig:"GALLERY_TICK_MS"`
	// CanvasWidth and CanvasHeight are the studio's initial canvas size.
	CanvasWidth  float64 `json:"canvas_width" envconfig:"CANVAS_WIDTH"`
	CanvasHeight float64 `json:"canvas_height" envconfig:"CANVAS_HEIGHT"`
	// MinSide and MaxSide are the studio's initial shape size range.
	MinSide float64 `json:"min_side" envconfig:"MIN_SIDE"`
	MaxSide float64 `json:"max_side" envconfig:"MAX_SIDE"`
	// GalleryMaxShapes is the gallery's default shape cap.
	GalleryMaxShapes int `json:"gallery_max_shapes" envconfig:"GALLERY_MAX_SHAPES"`
}

// DefaultConfig returns the built-in defaults. The studio size range
// matches the gallery's fixed range so both variants start out alike.
func DefaultConfig() *Config {
	return &Config{
		StudioTickMs:     200,
		GalleryTickMs:    1000,
		CanvasWidth:      800,
		CanvasHeight:     600,
		MinSide:          20,
		MaxSide:          150,
		GalleryMaxShapes: 24,
	}
}

// GetConfigDir returns the directory config and state are stored in,
// creating nothing. Honors SHAPESTUDIO_CONFIG_DIR.
func GetConfigDir() (string, error) {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".shape-studio"), nil
}

// LoadConfig reads the config file, fills gaps with defaults and applies
// environment overrides. It never fails; problems are logged and the
// defaults used instead.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	dir, err := GetConfigDir()
	if err != nil {
		log.WarningLog.Printf("failed to resolve config dir: %v", err)
		return applyEnv(cfg)
	}

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to read config file: %v", err)
		}
		// First run: write the defaults so the user has a file to edit.
		if saveErr := SaveConfig(cfg); saveErr != nil {
			log.WarningLog.Printf("failed to write default config: %v", saveErr)
		}
		return applyEnv(cfg)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		log.WarningLog.Printf("failed to parse config file: %v", err)
		cfg = DefaultConfig()
	}

	return applyEnv(sanitize(cfg))
}

func applyEnv(cfg *Config) *Config {
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		log.WarningLog.Printf("failed to apply env overrides: %v", err)
	}
	return sanitize(cfg)
}

// sanitize replaces unusable values with defaults rather than erroring.
func sanitize(cfg *Config) *Config {
	def := DefaultConfig()
	if cfg.StudioTickMs <= 0 {
		cfg.StudioTickMs = def.StudioTickMs
	}
	if cfg.GalleryTickMs <= 0 {
		cfg.GalleryTickMs = def.GalleryTickMs
	}
	if cfg.CanvasWidth <= 0 {
		cfg.CanvasWidth = def.CanvasWidth
	}
	if cfg.CanvasHeight <= 0 {
		cfg.CanvasHeight = def.CanvasHeight
	}
	if cfg.MinSide < 0 {
		cfg.MinSide = def.MinSide
	}
	if cfg.MaxSide < cfg.MinSide {
		cfg.MaxSide = cfg.MinSide
	}
	if cfg.GalleryMaxShapes <= 0 {
		cfg.GalleryMaxShapes = def.GalleryMaxShapes
	}
	return cfg
}

// SaveConfig writes the config file, creating the directory if needed.
func SaveConfig(cfg *Config) error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ConfigFileName), data, 0o644)
}
