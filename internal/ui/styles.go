// Package ui holds the lipgloss styles shared by the page and the CLI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/nova/internal/transcript"
)

// Styles is built from a theme once at startup.
type Styles struct {
	Theme Theme

	Navbar      lipgloss.Style
	NavbarSolid lipgloss.Style
	Brand       lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Section     lipgloss.Style
	Panel       lipgloss.Style
	Terminal    lipgloss.Style
	Code        lipgloss.Style
	Focused     lipgloss.Style
	KeyHint     lipgloss.Style
	Status      lipgloss.Style

	Prompt  lipgloss.Style
	Command lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
	Muted   lipgloss.Style
	Cursor  lipgloss.Style

	MetricValue lipgloss.Style
	MetricLabel lipgloss.Style

	BarNova  lipgloss.Style
	BarOther lipgloss.Style
	BarEmpty lipgloss.Style
	BarLabel lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,

		Navbar: lipgloss.NewStyle().
			Foreground(t.Text).
			Padding(0, 2),
		NavbarSolid: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(lipgloss.Color("#18181b")).
			Bold(true).
			Padding(0, 2),
		Brand: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text),
		Subtitle: lipgloss.NewStyle().
			Foreground(t.Muted),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Terminal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		Code: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		Status: lipgloss.NewStyle().
			Foreground(t.Primary),

		Prompt:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Command: lipgloss.NewStyle().Foreground(t.Text),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Info:    lipgloss.NewStyle().Foreground(t.Primary),
		Muted:   lipgloss.NewStyle().Foreground(t.Muted),
		Cursor:  lipgloss.NewStyle().Foreground(t.Text).Blink(true),

		MetricValue: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		MetricLabel: lipgloss.NewStyle().Foreground(t.Muted),

		BarNova:  lipgloss.NewStyle().Foreground(t.Primary),
		BarOther: lipgloss.NewStyle().Foreground(t.Error),
		BarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("#27272a")),
		BarLabel: lipgloss.NewStyle().Foreground(t.Text).Width(8),
	}
}

// Line renders one transcript entry. It satisfies transcript.Styler.
func (s Styles) Line(kind, text string) string {
	switch kind {
	case transcript.KindCommand:
		return s.Prompt.Render("$") + " " + s.Command.Render(text)
	case transcript.KindPrompt:
		return s.Prompt.Render(text)
	case transcript.KindCursor:
		return s.Prompt.Render("$") + " " + s.Cursor.Render(text)
	case transcript.KindSuccess:
		return s.Success.Render(text)
	case transcript.KindInfo:
		return s.Info.Render(text)
	case transcript.KindMuted:
		return s.Muted.Render(text)
	default:
		return text
	}
}

// Bar renders a horizontal bar filled to percent of width.
func Bar(percent float64, width int, fill, empty lipgloss.Style) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return fill.Render(strings.Repeat("█", filled)) + empty.Render(strings.Repeat("░", width-filled))
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b))).Bold(true)
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

// Separator is a decorative rule
func (s Styles) Separator(width int) string {
	if width < 8 {
		return s.Muted.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Muted.Render(left + " ◆ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	v = min(max(v, 0), 255)
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
