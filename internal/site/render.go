package site

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/nova/internal/player"
	"github.com/san-kum/nova/internal/ui"
	"github.com/san-kum/nova/internal/visibility"
)

// docRenderer caches glamour output per block and width.
type docRenderer struct {
	width    int
	renderer *glamour.TermRenderer
	cache    map[int]string
}

func newDocRenderer() *docRenderer {
	return &docRenderer{cache: make(map[int]string)}
}

func (d *docRenderer) render(idx int, blk codeBlock, width int) string {
	if width != d.width || d.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return blk.code
		}
		d.width, d.renderer = width, r
		d.cache = make(map[int]string)
	}
	if out, ok := d.cache[idx]; ok {
		return out
	}
	md := fmt.Sprintf("```%s\n%s\n```\n", blk.lang, blk.code)
	out, err := d.renderer.Render(md)
	if err != nil {
		out = blk.code
	}
	out = strings.Trim(out, "\n")
	d.cache[idx] = out
	return out
}

type pageBuilder struct {
	b     strings.Builder
	row   int
	spans map[string]visibility.Span
}

func (p *pageBuilder) add(id, block string) {
	h := lipgloss.Height(block)
	if id != "" {
		p.spans[id] = visibility.Span{Top: p.row, Height: h}
	}
	p.b.WriteString(block)
	p.b.WriteString("\n")
	p.row += h
}

func (p *pageBuilder) gap() { p.add("", "") }

// render lays out every section and records the rows each one occupies.
func (m *Model) render() (string, map[string]visibility.Span) {
	w := m.contentWidth()
	p := &pageBuilder{spans: make(map[string]visibility.Span)}

	p.add(sectionHero, m.renderHero(w))
	p.gap()

	p.add("", m.styles.Section.Render("By the numbers"))
	p.add(sectionStats, m.renderStats(w))
	p.gap()

	p.add("", m.styles.Section.Render("Live demo"))
	p.add(sectionTerminal, m.renderTerminal())
	p.gap()

	p.add("", m.styles.Section.Render("Nova vs Docker"))
	p.add(sectionCompare, m.renderComparisons(w))
	p.gap()

	p.add("", m.styles.Section.Render("Documentation"))
	p.add(sectionDocs, m.renderDocs(w))
	p.gap()

	p.add("", m.styles.Section.Render("Playground"))
	p.add(sectionPlayground, m.renderPlayground(w))
	p.gap()

	p.add(sectionFooter, m.styles.Separator(w)+"\n"+m.styles.Subtitle.Render("Nova · lightweight containers for every runtime"))

	return p.b.String(), p.spans
}

func (m *Model) renderNavbar() string {
	links := make([]string, len(navSections))
	for i, s := range navSections {
		links[i] = s.key + " " + s.label
	}
	line := m.styles.Brand.Render("⚡ Nova") + "   " + strings.Join(links, "  ")

	style := m.styles.Navbar
	if m.navbarSolid() {
		style = m.styles.NavbarSolid
	}
	return style.Width(max(m.width, 1)).Render(line)
}

// navbarSolid is true once the page is scrolled past the configured offset.
func (m *Model) navbarSolid() bool {
	return m.page.YOffset > m.opts.NavbarOffset
}

func (m *Model) renderHero(w int) string {
	t := m.styles.Theme
	title := ui.GradientText("The container runtime built for speed", t.Primary, t.Secondary)
	sub := m.styles.Subtitle.Width(w).Render(
		"Run WebAssembly, Python and Node.js workloads in isolated containers that start in milliseconds.")
	hint := m.styles.KeyHint.Render("scroll down to see it run")
	return lipgloss.JoinVertical(lipgloss.Left, "", title, "", sub, "", hint)
}

func (m *Model) renderStats(w int) string {
	cellWidth := max(w/len(m.counters), 12)
	cells := make([]string, len(m.counters))
	for i, c := range m.counters {
		value := m.styles.MetricValue.Render(fmt.Sprintf("%d%s", c.Value(), c.Suffix))
		label := m.styles.MetricLabel.Render(c.Label)
		cells[i] = lipgloss.NewStyle().Width(cellWidth).Render(value + "\n" + label)
	}
	return m.styles.Panel.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m *Model) renderTerminal() string {
	header := m.styles.Muted.Render("● ● ●  nova: bash")
	body := m.terminal.View()
	if len(m.terminal.Lines()) == 0 && m.player.State() == player.Idle {
		body = m.styles.Muted.Render("waiting...")
	}
	return m.styles.Terminal.Render(header + "\n" + body)
}

func (m *Model) renderComparisons(w int) string {
	barWidth := max(w-30, 10)
	var b strings.Builder
	for i, c := range comparisons {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.Title.Render(c.title))
		b.WriteString("\n")

		scale := max(c.nova, c.other)
		novaPct, otherPct := 0.0, 0.0
		if m.barsFilled {
			novaPct, otherPct = c.nova/scale, c.other/scale
		}
		b.WriteString(m.styles.BarLabel.Render("Nova") +
			ui.Bar(novaPct, barWidth, m.styles.BarNova, m.styles.BarEmpty) +
			fmt.Sprintf(" %g%s\n", c.nova, c.unit))
		b.WriteString(m.styles.BarLabel.Render("Docker") +
			ui.Bar(otherPct, barWidth, m.styles.BarOther, m.styles.BarEmpty) +
			fmt.Sprintf(" %g%s", c.other, c.unit))
	}
	return b.String()
}

func (m *Model) renderDocs(w int) string {
	blocks := make([]string, len(docs))
	for i, blk := range docs {
		icon := "⧉ copy"
		if m.copied == i {
			icon = m.styles.Success.Render("✓ copied")
		}
		header := m.styles.Title.Render(blk.title) + "  " + m.styles.KeyHint.Render(icon)

		style := m.styles.Code
		if i == m.focus {
			style = m.styles.Focused
		}
		code := m.md.render(i, blk, w-4)
		blocks[i] = header + "\n" + style.Width(w-2).Render(code)
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderPlayground(w int) string {
	src := m.styles.Code.Width(w - 2).Render(playgroundSource)

	var out string
	switch m.playground {
	case playgroundCompiling:
		out = m.styles.Info.Render("⠋ Compiling...")
	case playgroundDone:
		out = m.styles.Success.Render(strings.Join(playgroundOutput, "\n"))
	default:
		out = m.styles.KeyHint.Render("press r to run")
	}
	return src + "\n" + out
}

func (m *Model) renderStatus() string {
	if m.status != "" {
		return m.styles.Status.Render(m.status)
	}
	return m.styles.KeyHint.Render("j/k scroll · 1-5 jump · tab focus · c copy · r run · q quit")
}
