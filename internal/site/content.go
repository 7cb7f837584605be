package site

type stat struct {
	label  string
	target int
	suffix string
}

var stats = []stat{
	{"faster than Docker", 1000, "x"},
	{"cold start", 10, "ms"},
	{"memory per container", 5, "MB"},
	{"replicas per host", 10000, "+"},
}

type comparison struct {
	title string
	unit  string
	nova  float64
	other float64
}

var comparisons = []comparison{
	{"Startup time", "ms", 10, 1000},
	{"Memory footprint", "MB", 5, 128},
	{"Image size", "MB", 2, 180},
}

type codeBlock struct {
	title string
	lang  string
	code  string
}

var docs = []codeBlock{
	{
		title: "Install",
		lang:  "bash",
		code:  "cargo install --path .\nnova --help",
	},
	{
		title: "Run a container",
		lang:  "bash",
		code:  "nova run app.wasm --replicas 100 --fuel 1000000\nnova run app.py --memory 256\nnova run server.js",
	},
	{
		title: "Example: Node.js server",
		lang:  "javascript",
		code: `const express = require('express');
const app = express();

app.get('/api/status', (req, res) => {
    res.json({
        status: 'running',
        runtime: 'Node.js',
        container: 'Nova',
        uptime: process.uptime()
    });
});

app.listen(3000);`,
	},
	{
		title: "Example: Python server",
		lang:  "python",
		code: `from http.server import HTTPServer, BaseHTTPRequestHandler

class NovaHandler(BaseHTTPRequestHandler):
    def do_GET(self):
        self.send_response(200)
        self.send_header('Content-type', 'text/html')
        self.end_headers()
        self.wfile.write(b"<h1>Python on Nova!</h1>")

HTTPServer(('0.0.0.0', 8000), NovaHandler).serve_forever()`,
	},
}

const playgroundSource = `fn main() {
    println!("Hello from Nova! 🚀");
}`

var playgroundOutput = []string{
	"✔ Compilation successful",
	"📦 Module loaded in 8.2ms",
	"🔧 Instantiated in 187µs",
	"",
	"Output:",
	"  Hello from Nova! 🚀",
	"",
	"⚡ Execution time: 421µs",
}

const (
	sectionHero       = "hero"
	sectionStats      = "stats"
	sectionTerminal   = "terminal"
	sectionCompare    = "compare"
	sectionDocs       = "docs"
	sectionPlayground = "playground"
	sectionFooter     = "footer"
)

// navSections are reachable with the number keys.
var navSections = []struct {
	key, id, label string
}{
	{"1", sectionStats, "Stats"},
	{"2", sectionTerminal, "Demo"},
	{"3", sectionCompare, "Compare"},
	{"4", sectionDocs, "Docs"},
	{"5", sectionPlayground, "Playground"},
}
