package config

import "sort"

var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"fast": func(c *Config) {
		c.Counters.DurationMs = 500
		c.Playground.CompileMs = 300
	},
	"eager": func(c *Config) {
		c.Terminal.Threshold = 0
		c.Counters.Threshold = 0
	},
	"retro": func(c *Config) {
		c.Theme = "retro"
		c.Script = "python"
	},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ApplyPreset changes cfg in place.
func ApplyPreset(cfg *Config, name string) bool {
	apply, ok := Presets[name]
	if !ok {
		return false
	}
	apply(cfg)
	return true
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
