package config

import (
	"os"
	"path/filepath"
	"testing"

	"shape-studio/log"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Initialize(true)
	defer log.Close()
	m.Run()
}

func TestDefaultConfig_IsUsable(t *testing.T) {
	req := require.New(t)
	cfg := DefaultConfig()

	req.Greater(cfg.StudioTickMs, 0)
	req.Greater(cfg.GalleryTickMs, 0)
	req.Greater(cfg.CanvasWidth, 0.0)
	req.Greater(cfg.CanvasHeight, 0.0)
	req.GreaterOrEqual(cfg.MinSide, 0.0)
	req.GreaterOrEqual(cfg.MaxSide, cfg.MinSide)
	req.Greater(cfg.GalleryMaxShapes, 0)
}

func TestLoadConfig_WritesDefaultsOnFirstRun(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	t.Setenv(configDirEnv, dir)

	cfg := LoadConfig()

	req.Equal(DefaultConfig(), cfg)
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	req.NoError(err)
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	req := require.New(t)
	t.Setenv(configDirEnv, t.TempDir())

	cfg := DefaultConfig()
	cfg.StudioTickMs = 50
	cfg.GalleryMaxShapes = 99
	req.NoError(SaveConfig(cfg))

	loaded := LoadConfig()
	req.Equal(50, loaded.StudioTickMs)
	req.Equal(99, loaded.GalleryMaxShapes)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	req := require.New(t)
	t.Setenv(configDirEnv, t.TempDir())
	t.Setenv("SHAPESTUDIO_STUDIO_TICK_MS", "75")

	req.NoError(SaveConfig(DefaultConfig()))

	loaded := LoadConfig()
	req.Equal(75, loaded.StudioTickMs)
}

func TestLoadConfig_SanitizesBadValues(t *testing.T) {
	req := require.New(t)
	t.Setenv(configDirEnv, t.TempDir())

	cfg := DefaultConfig()
	cfg.StudioTickMs = -5
	cfg.CanvasWidth = 0
	cfg.MaxSide = cfg.MinSide - 1
	req.NoError(SaveConfig(cfg))

	loaded := LoadConfig()
	def := DefaultConfig()
	req.Equal(def.StudioTickMs, loaded.StudioTickMs)
	req.Equal(def.CanvasWidth, loaded.CanvasWidth)
	req.GreaterOrEqual(loaded.MaxSide, loaded.MinSide)
}

func TestLoadConfig_CorruptFileFallsBackToDefaults(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	t.Setenv(configDirEnv, dir)

	req.NoError(os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not json"), 0o644))

	req.Equal(DefaultConfig(), LoadConfig())
}

func TestState_RoundTrip(t *testing.T) {
	req := require.New(t)
	t.Setenv(configDirEnv, t.TempDir())

	req.Equal(AppState{}, LoadState())

	req.NoError(SaveState(AppState{LastSeed: 42, TotalSpawned: 7}))

	loaded := LoadState()
	req.Equal(int64(42), loaded.LastSeed)
	req.Equal(7, loaded.TotalSpawned)
	req.False(loaded.UpdatedAt.IsZero())
}
