package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme            = "nova"
	DefaultScript           = "replicas"
	DefaultTerminalThresh   = 0.3
	DefaultCounterThresh    = 0.5
	DefaultCounterDuration  = 2000
	DefaultCounterFrame     = 16
	DefaultNavbarOffset     = 3
	DefaultServeProfile     = "node"
	DefaultLogLevel         = "info"
	DefaultPlaygroundDelay  = 1500
	DefaultCopyFeedbackTime = 2000
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Theme      string           `yaml:"theme" env:"THEME"`
	Script     string           `yaml:"script" env:"SCRIPT"`
	ScriptFile string           `yaml:"script_file" env:"SCRIPT_FILE"`
	Terminal   TerminalConfig   `yaml:"terminal" envPrefix:"TERMINAL_"`
	Counters   CounterConfig    `yaml:"counters" envPrefix:"COUNTERS_"`
	Navbar     NavbarConfig     `yaml:"navbar" envPrefix:"NAVBAR_"`
	Playground PlaygroundConfig `yaml:"playground" envPrefix:"PLAYGROUND_"`
	Serve      ServeConfig      `yaml:"serve" envPrefix:"SERVE_"`
	Log        LogConfig        `yaml:"log" envPrefix:"LOG_"`
}

type TerminalConfig struct {
	Threshold float64 `yaml:"threshold" env:"THRESHOLD"`
}

type CounterConfig struct {
	Threshold  float64 `yaml:"threshold" env:"THRESHOLD"`
	DurationMs int     `yaml:"duration_ms" env:"DURATION_MS"`
	FrameMs    int     `yaml:"frame_ms" env:"FRAME_MS"`
}

type NavbarConfig struct {
	SolidOffset int `yaml:"solid_offset" env:"SOLID_OFFSET"`
}

type PlaygroundConfig struct {
	CompileMs int `yaml:"compile_ms" env:"COMPILE_MS"`
	CopyMs    int `yaml:"copy_feedback_ms" env:"COPY_FEEDBACK_MS"`
}

type ServeConfig struct {
	Profile string `yaml:"profile" env:"PROFILE"`
	Addr    string `yaml:"addr" env:"ADDR"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	File  string `yaml:"file" env:"FILE"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:  DefaultTheme,
		Script: DefaultScript,
		Terminal: TerminalConfig{
			Threshold: DefaultTerminalThresh,
		},
		Counters: CounterConfig{
			Threshold:  DefaultCounterThresh,
			DurationMs: DefaultCounterDuration,
			FrameMs:    DefaultCounterFrame,
		},
		Navbar: NavbarConfig{
			SolidOffset: DefaultNavbarOffset,
		},
		Playground: PlaygroundConfig{
			CompileMs: DefaultPlaygroundDelay,
			CopyMs:    DefaultCopyFeedbackTime,
		},
		Serve: ServeConfig{
			Profile: DefaultServeProfile,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from NOVA_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: "NOVA_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Resolve loads path, then applies the environment, then validates.
func Resolve(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Terminal.Threshold < 0 || c.Terminal.Threshold > 1 {
		return fmt.Errorf("%w: terminal.threshold %v not in [0,1]", ErrInvalid, c.Terminal.Threshold)
	}
	if c.Counters.Threshold < 0 || c.Counters.Threshold > 1 {
		return fmt.Errorf("%w: counters.threshold %v not in [0,1]", ErrInvalid, c.Counters.Threshold)
	}
	if c.Counters.DurationMs <= 0 || c.Counters.FrameMs <= 0 {
		return fmt.Errorf("%w: counters need positive duration_ms and frame_ms", ErrInvalid)
	}
	if c.Counters.FrameMs > c.Counters.DurationMs {
		return fmt.Errorf("%w: counters.frame_ms exceeds duration_ms", ErrInvalid)
	}
	if c.Navbar.SolidOffset < 0 {
		return fmt.Errorf("%w: navbar.solid_offset is negative", ErrInvalid)
	}
	if c.Playground.CompileMs < 0 || c.Playground.CopyMs < 0 {
		return fmt.Errorf("%w: playground delays are negative", ErrInvalid)
	}
	return nil
}
