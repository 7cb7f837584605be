package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/nova/internal/config"
	"github.com/san-kum/nova/internal/transcript"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCommand(t *testing.T, flagArgs ...string) *cobra.Command {
	t.Helper()
	configFile, preset, theme, verbose = "", "", config.DefaultTheme, false
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&configFile, "config", "", "")
	cmd.Flags().StringVar(&preset, "preset", "", "")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "")
	require.NoError(t, cmd.ParseFlags(flagArgs))
	return cmd
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nova.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: sunset\nscript: node\n"), 0644))

	cfg, err := loadConfig(testCommand(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "sunset", cfg.Theme)
	assert.Equal(t, "node", cfg.Script)

	t.Setenv("NOVA_THEME", "minimal")
	cfg, err = loadConfig(testCommand(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg.Theme, "env beats file")

	cfg, err = loadConfig(testCommand(t, "--config", path, "--theme", "retro"))
	require.NoError(t, err)
	assert.Equal(t, "retro", cfg.Theme, "flag beats env")
}

func TestLoadConfig_Preset(t *testing.T) {
	cfg, err := loadConfig(testCommand(t, "--preset", "eager"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Terminal.Threshold)

	_, err = loadConfig(testCommand(t, "--preset", "nope"))
	assert.ErrorContains(t, err, "unknown preset")
}

func TestLoadConfig_Rejects(t *testing.T) {
	_, err := loadConfig(testCommand(t, "--theme", "neon"))
	assert.ErrorContains(t, err, "unknown theme")

	t.Setenv("NOVA_TERMINAL_THRESHOLD", "1.5")
	_, err = loadConfig(testCommand(t))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoadConfig_Verbose(t *testing.T) {
	cfg, err := loadConfig(testCommand(t, "--verbose"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestResolveScript(t *testing.T) {
	cfg := config.DefaultConfig()

	s, err := resolveScript(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultScript, s.Name)

	s, err = resolveScript(cfg, []string{"python"})
	require.NoError(t, err)
	assert.Equal(t, "python", s.Name)

	_, err = resolveScript(cfg, []string{"ruby"})
	assert.ErrorIs(t, err, transcript.ErrUnknownScript)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, transcript.Save(path, &transcript.Script{
		Name:  "custom",
		Lines: []transcript.Entry{{DelayMs: 10, Text: "hi"}},
	}))

	s, err = resolveScript(cfg, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "custom", s.Name)

	cfg.ScriptFile = path
	s, err = resolveScript(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "custom", s.Name)
}
