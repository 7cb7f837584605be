package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the page
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

var (
	ThemeNova = Theme{
		Name:       "nova",
		Primary:    lipgloss.Color("#06b6d4"), // Cyan
		Secondary:  lipgloss.Color("#8b5cf6"), // Violet
		Accent:     lipgloss.Color("#f59e0b"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#fafafa"),
		Muted:      lipgloss.Color("#a1a1aa"),
		Success:    lipgloss.Color("#10b981"),
		Warning:    lipgloss.Color("#f59e0b"),
		Error:      lipgloss.Color("#ef4444"),
	}

	// Amber terminal, like the transcript on an old VT220.
	ThemeRetro = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#ffb000"),
		Secondary:  lipgloss.Color("#cc8400"),
		Accent:     lipgloss.Color("#ffd27a"),
		Background: lipgloss.Color("#1a1000"),
		Text:       lipgloss.Color("#ffcc66"),
		Muted:      lipgloss.Color("#7a5a1e"),
		Success:    lipgloss.Color("#ffd27a"),
		Warning:    lipgloss.Color("#ff8c00"),
		Error:      lipgloss.Color("#ff5f00"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#e4e4e7"),
		Secondary:  lipgloss.Color("#a1a1aa"),
		Accent:     lipgloss.Color("#06b6d4"),
		Background: lipgloss.Color("#09090b"),
		Text:       lipgloss.Color("#fafafa"),
		Muted:      lipgloss.Color("#71717a"),
		Success:    lipgloss.Color("#a3e635"),
		Warning:    lipgloss.Color("#facc15"),
		Error:      lipgloss.Color("#f87171"),
	}

	// Matches the pink-to-red gradient of the Node.js example page.
	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#f5576c"),
		Secondary:  lipgloss.Color("#f093fb"),
		Accent:     lipgloss.Color("#fda4af"),
		Background: lipgloss.Color("#1f0a14"),
		Text:       lipgloss.Color("#fff1f2"),
		Muted:      lipgloss.Color("#9f7a8a"),
		Success:    lipgloss.Color("#34d399"),
		Warning:    lipgloss.Color("#fbbf24"),
		Error:      lipgloss.Color("#e11d48"),
	}

	Themes = []Theme{
		ThemeNova,
		ThemeRetro,
		ThemeMinimal,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to nova
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNova
}

func HasTheme(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
