package responder

import (
	"fmt"
	"sort"
)

// Profile describes one of the documented example servers.
type Profile struct {
	Name     string
	Runtime  string
	Port     int
	Title    string
	Heading  string
	Tagline  string
	Startup  string
	Gradient [2]string
}

var Profiles = map[string]Profile{
	"node": {
		Name:     "node",
		Runtime:  "Node.js",
		Port:     3000,
		Title:    "Nova Node.js Server",
		Heading:  "⚡ Node.js on Nova!",
		Tagline:  "This Express server is running in a Nova container",
		Startup:  "~50ms",
		Gradient: [2]string{"#f093fb", "#f5576c"},
	},
	"python": {
		Name:     "python",
		Runtime:  "Python",
		Port:     8000,
		Title:    "Nova Python Server",
		Heading:  "🐍 Python on Nova!",
		Tagline:  "This Python web server is running in a Nova container",
		Startup:  "~50ms",
		Gradient: [2]string{"#667eea", "#764ba2"},
	},
	"wasm": {
		Name:     "wasm",
		Runtime:  "WebAssembly",
		Port:     8080,
		Title:    "Nova Server",
		Heading:  "🚀 Running on Nova!",
		Tagline:  "This is a WebAssembly server running in Nova container.",
		Startup:  "~10ms",
		Gradient: [2]string{"#06b6d4", "#8b5cf6"},
	},
}

func GetProfile(name string) (Profile, error) {
	p, ok := Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown profile: %s (available: %v)", name, ListProfiles())
	}
	return p, nil
}

func ListProfiles() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
