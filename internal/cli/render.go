package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/splitlog/internal/tui/theme"
)

// Align controls how a column's cells are padded.
type Align int

// Column alignments.
const (
	AlignLeft Align = iota
	AlignRight
)

// SeparatorRow, used as the only cell of a row, draws a horizontal rule.
const SeparatorRow = "---"

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Align   []Align // per column; missing entries are left-aligned
}

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	dim    lipgloss.Style
	paid   lipgloss.Style
	owed   lipgloss.Style
	border lipgloss.Color
}

func currentStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		dim:    lipgloss.NewStyle().Foreground(t.TextDim),
		paid:   lipgloss.NewStyle().Foreground(t.Paid),
		owed:   lipgloss.NewStyle().Foreground(t.Owed),
		border: t.Border,
	}
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	s := currentStyles()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return box.Render(s.title.Render(title))
}

// RenderMuted renders secondary text such as hints and empty-state notes.
func RenderMuted(text string) string {
	return currentStyles().muted.Render(text)
}

// RenderPaid colors text as settled money.
func RenderPaid(text string) string {
	return currentStyles().paid.Render(text)
}

// RenderOwed colors text as outstanding money.
func RenderOwed(text string) string {
	return currentStyles().owed.Render(text)
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		if isSeparator(row) {
			continue
		}
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	s := currentStyles()
	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(s.header.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule(s, widths, "╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(line(s, s.header, widths, t.Headers, nil))
		b.WriteString(rule(s, widths, "├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		if isSeparator(row) {
			b.WriteString(rule(s, widths, "├", "┼", "┤"))
			continue
		}
		b.WriteString(line(s, s.value, widths, row, t.Align))
	}

	b.WriteString(rule(s, widths, "╰", "┴", "╯"))
	return b.String()
}

func isSeparator(row []string) bool {
	return len(row) == 1 && row[0] == SeparatorRow
}

func rule(s styles, widths []int, left, mid, right string) string {
	var b strings.Builder
	b.WriteString(s.dim.Render(left))
	for i, w := range widths {
		b.WriteString(s.dim.Render(strings.Repeat("─", w+2)))
		if i < len(widths)-1 {
			b.WriteString(s.dim.Render(mid))
		}
	}
	b.WriteString(s.dim.Render(right))
	b.WriteString("\n")
	return b.String()
}

func line(s styles, cellStyle lipgloss.Style, widths []int, cells []string, align []Align) string {
	var b strings.Builder
	b.WriteString(s.dim.Render("│"))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(cellStyle.Render(" " + pad(cell, w, columnAlign(align, i)) + " "))
		if i < len(widths)-1 {
			b.WriteString(s.dim.Render("│"))
		}
	}
	b.WriteString(s.dim.Render("│"))
	b.WriteString("\n")
	return b.String()
}

func columnAlign(align []Align, i int) Align {
	if i < len(align) {
		return align[i]
	}
	return AlignLeft
}

func pad(cell string, width int, a Align) string {
	gap := width - lipgloss.Width(cell)
	if gap <= 0 {
		return cell
	}
	if a == AlignRight {
		return strings.Repeat(" ", gap) + cell
	}
	return cell + strings.Repeat(" ", gap)
}

// RenderProgressBar renders a simple text progress bar, e.g. "[██░░] 2/4".
func RenderProgressBar(current, total, width int) string {
	if total <= 0 {
		return ""
	}

	filled := min(current*width/total, width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d/%d", currentStyles().muted.Render(bar), current, total)
}
