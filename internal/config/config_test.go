package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Script != "replicas" {
		t.Errorf("expected script replicas, got %s", cfg.Script)
	}
	if cfg.Terminal.Threshold != 0.3 {
		t.Errorf("expected terminal threshold 0.3, got %v", cfg.Terminal.Threshold)
	}
	if cfg.Counters.Threshold != 0.5 {
		t.Errorf("expected counter threshold 0.5, got %v", cfg.Counters.Threshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nova.yaml")
	data := []byte("theme: retro\nterminal:\n  threshold: 0.6\nserve:\n  profile: python\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "retro", cfg.Theme)
	assert.Equal(t, 0.6, cfg.Terminal.Threshold)
	assert.Equal(t, "python", cfg.Serve.Profile)
	assert.Equal(t, DefaultCounterDuration, cfg.Counters.DurationMs, "unset fields keep defaults")
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nova.yaml")
	cfg := DefaultConfig()
	cfg.Log.Level = "debug"

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("NOVA_THEME", "sunset")
	t.Setenv("NOVA_SERVE_ADDR", ":9999")
	t.Setenv("NOVA_TERMINAL_THRESHOLD", "0.8")
	t.Setenv("NOVA_COUNTERS_FRAME_MS", "20")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "sunset", cfg.Theme)
	assert.Equal(t, ":9999", cfg.Serve.Addr)
	assert.Equal(t, 0.8, cfg.Terminal.Threshold)
	assert.Equal(t, 20, cfg.Counters.FrameMs)
	assert.Equal(t, DefaultScript, cfg.Script)
}

func TestApplyEnv_BadValue(t *testing.T) {
	t.Setenv("NOVA_COUNTERS_FRAME_MS", "fast")
	assert.Error(t, DefaultConfig().ApplyEnv())
}

func TestResolve_EnvOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nova.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: retro\n"), 0644))
	t.Setenv("NOVA_THEME", "minimal")

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg.Theme)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"terminal threshold high", func(c *Config) { c.Terminal.Threshold = 1.5 }},
		{"terminal threshold negative", func(c *Config) { c.Terminal.Threshold = -0.1 }},
		{"counter threshold high", func(c *Config) { c.Counters.Threshold = 2 }},
		{"zero duration", func(c *Config) { c.Counters.DurationMs = 0 }},
		{"zero frame", func(c *Config) { c.Counters.FrameMs = 0 }},
		{"frame longer than duration", func(c *Config) { c.Counters.FrameMs = 5000 }},
		{"negative navbar offset", func(c *Config) { c.Navbar.SolidOffset = -1 }},
		{"negative compile delay", func(c *Config) { c.Playground.CompileMs = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("eager")
	require.NotNil(t, cfg)
	assert.Equal(t, 0.0, cfg.Terminal.Threshold)
	assert.NoError(t, cfg.Validate())

	assert.Nil(t, GetPreset("nonexistent"))
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	assert.Contains(t, presets, "default")
	assert.Contains(t, presets, "fast")
	for _, name := range presets {
		assert.NoError(t, GetPreset(name).Validate(), name)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, ApplyPreset(cfg, "retro"))
	assert.Equal(t, "retro", cfg.Theme)
	assert.False(t, ApplyPreset(cfg, "nope"))
}
