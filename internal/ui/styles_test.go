package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/nova/internal/transcript"
	"github.com/stretchr/testify/assert"
)

func TestLine_KeepsText(t *testing.T) {
	s := NewStyles(ThemeNova)
	kinds := []string{
		transcript.KindPlain, transcript.KindPrompt, transcript.KindCommand,
		transcript.KindSuccess, transcript.KindInfo, transcript.KindMuted,
		transcript.KindCursor, "unknown",
	}
	for _, k := range kinds {
		assert.Contains(t, s.Line(k, "nova run app.wasm"), "nova run app.wasm", "kind %q", k)
	}
	assert.Contains(t, s.Line(transcript.KindCommand, "ls"), "$")
	assert.Equal(t, "raw", s.Line("", "raw"))
}

func TestBar_Width(t *testing.T) {
	plain := lipgloss.NewStyle()
	tests := []struct {
		percent float64
		filled  int
	}{
		{0, 0},
		{0.5, 10},
		{1, 20},
		{1.7, 20},
		{-1, 0},
	}
	for _, tt := range tests {
		bar := Bar(tt.percent, 20, plain, plain)
		assert.Equal(t, tt.filled, strings.Count(bar, "█"), "percent %v", tt.percent)
		assert.Equal(t, 20, strings.Count(bar, "█")+strings.Count(bar, "░"))
	}
}

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "retro", GetTheme("retro").Name)
	assert.Equal(t, "nova", GetTheme("missing").Name)
	assert.True(t, HasTheme("sunset"))
	assert.False(t, HasTheme("missing"))
	assert.Len(t, ThemeNames(), len(Themes))
}

func TestHex(t *testing.T) {
	r, g, b := parseHex("#06b6d4")
	assert.Equal(t, []int{6, 182, 212}, []int{r, g, b})
	assert.Equal(t, "#06b6d4", hexColor(r, g, b))
	assert.Equal(t, "#ff0000", hexColor(300, -4, 0))

	r, g, b = parseHex("bad")
	assert.Equal(t, []int{255, 255, 255}, []int{r, g, b})
}

func TestGradientText_Empty(t *testing.T) {
	assert.Equal(t, "", GradientText("", ThemeNova.Primary, ThemeNova.Secondary))
	assert.NotEmpty(t, GradientText("N", ThemeNova.Primary, ThemeNova.Secondary))
}

func TestSeparator(t *testing.T) {
	s := NewStyles(ThemeMinimal)
	assert.Contains(t, s.Separator(40), "◆")
	assert.NotContains(t, s.Separator(4), "◆")
}

func TestThemes_Distinct(t *testing.T) {
	seen := map[lipgloss.Color]string{}
	for _, th := range Themes {
		if other, ok := seen[th.Primary]; ok {
			t.Errorf("themes %s and %s share primary %s", th.Name, other, th.Primary)
		}
		seen[th.Primary] = th.Name
		assert.Equal(t, th, GetTheme(th.Name))
	}
	assert.Equal(t, lipgloss.Color("#ffb000"), GetTheme("retro").Primary)
	assert.Equal(t, lipgloss.Color("#f5576c"), GetTheme("sunset").Primary)
}
