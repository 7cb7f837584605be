package transcript

import (
	"fmt"
	"sort"
)

var Builtins = map[string]*Script{
	"replicas": {
		Name:        "replicas",
		Description: "landing page demo: 100 wasm replicas",
		Lines: []Entry{
			{DelayMs: 1000, Kind: KindCommand, Text: "nova run app.wasm --replicas 100"},
			{DelayMs: 500, Kind: KindSuccess, Text: "🚀 Scheduler: Spawning 100 replicas..."},
			{DelayMs: 300, Kind: KindInfo, Text: "📦 Module loaded in 10.71ms"},
			{DelayMs: 300, Kind: KindInfo, Text: "🔧 Instantiated in 239.67µs"},
			{DelayMs: 200, Kind: KindSuccess, Text: "✅ Replica #0 running"},
			{DelayMs: 100, Kind: KindSuccess, Text: "✅ Replica #1 running"},
			{DelayMs: 100, Kind: KindSuccess, Text: "✅ Replica #2 running"},
			{DelayMs: 100, Kind: KindMuted, Text: "... (97 more)"},
			{DelayMs: 500, Kind: KindSuccess, Text: "✅ All replicas completed"},
			{DelayMs: 300, Kind: KindMuted, Text: "⚡ Total time: 24ms"},
			{DelayMs: 1000, Kind: KindCursor, Text: "_"},
		},
	},
	"python": {
		Name:        "python",
		Description: "auto-detected python app",
		Lines: []Entry{
			{DelayMs: 800, Kind: KindCommand, Text: "nova run app.py --memory 256"},
			{DelayMs: 400, Kind: KindInfo, Text: "🔍 Detected: Python"},
			{DelayMs: 300, Kind: KindInfo, Text: "🐍 Python Runtime"},
			{DelayMs: 150, Kind: KindMuted, Text: "   Version: Python 3.12.1"},
			{DelayMs: 150, Kind: KindMuted, Text: "   File: app.py"},
			{DelayMs: 200, Kind: KindMuted, Text: "   Framework: Flask"},
			{DelayMs: 400, Kind: KindSuccess, Text: "🚀 Starting Flask server..."},
			{DelayMs: 1000, Kind: KindCursor, Text: "_"},
		},
	},
	"node": {
		Name:        "node",
		Description: "auto-detected node.js app",
		Lines: []Entry{
			{DelayMs: 800, Kind: KindCommand, Text: "nova run server.js"},
			{DelayMs: 400, Kind: KindInfo, Text: "🔍 Detected: JavaScript/TypeScript"},
			{DelayMs: 300, Kind: KindInfo, Text: "📦 Installing Node.js dependencies..."},
			{DelayMs: 600, Kind: KindInfo, Text: "⚡ Node.js Runtime"},
			{DelayMs: 150, Kind: KindMuted, Text: "   Version: v20.11.0"},
			{DelayMs: 200, Kind: KindMuted, Text: "   Framework: Express"},
			{DelayMs: 400, Kind: KindSuccess, Text: "🚀 Starting Express with npm..."},
			{DelayMs: 1000, Kind: KindCursor, Text: "_"},
		},
	},
	"serve": {
		Name:        "serve",
		Description: "static file server",
		Lines: []Entry{
			{DelayMs: 800, Kind: KindCommand, Text: "nova serve ./public --port 8080"},
			{DelayMs: 300, Kind: KindInfo, Text: "📁 Static File Server"},
			{DelayMs: 150, Kind: KindMuted, Text: "   Port: 8080"},
			{DelayMs: 150, Kind: KindMuted, Text: "   Path: ./public"},
			{DelayMs: 400, Kind: KindSuccess, Text: "🚀 Starting server at http://localhost:8080"},
			{DelayMs: 1000, Kind: KindCursor, Text: "_"},
		},
	},
}

// Builtin returns a copy of the named script so callers may modify it.
func Builtin(name string) (*Script, error) {
	s, ok := Builtins[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownScript, name, ListBuiltin())
	}
	out := *s
	out.Lines = append([]Entry(nil), s.Lines...)
	return &out, nil
}

func ListBuiltin() []string {
	names := make([]string, 0, len(Builtins))
	for name := range Builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
