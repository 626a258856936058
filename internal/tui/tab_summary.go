package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/splitlog/internal/tui/components"
	"github.com/theirongolddev/splitlog/internal/tui/theme"
)

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active

	outstanding := 0
	for _, e := range a.expenses {
		if !e.Settled() {
			outstanding++
		}
	}

	metrics := []components.Metric{
		{Label: "Spent", Value: a.money(a.spent), Note: fmt.Sprintf("%d expenses", len(a.expenses))},
		{Label: "Collected", Value: a.money(a.totals.Paid)},
		{Label: "Outstanding", Value: a.money(a.totals.Owed), Note: fmt.Sprintf("%d open", outstanding)},
		{Label: "People", Value: fmt.Sprintf("%d", len(a.balances))},
	}
	if a.isCompactLayout() {
		metrics = metrics[:3]
	}
	cards := components.MetricCardRow(metrics, cw)

	inner := components.CardInnerWidth(cw)
	if len(a.balances) == 0 {
		body := lipgloss.NewStyle().Foreground(t.TextDim).Render("Nothing recorded yet.")
		return lipgloss.JoinVertical(lipgloss.Left, cards, components.ContentCard("Balances", body, cw, false))
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	paidStyle := lipgloss.NewStyle().Foreground(t.Paid)
	owedStyle := lipgloss.NewStyle().Foreground(t.Owed)

	nameW := 6
	for _, pb := range a.balances {
		nameW = max(nameW, lipgloss.Width(pb.Name))
	}
	nameW = min(nameW, 24)
	const moneyW = 14
	barW := max(inner-nameW-2*moneyW-10, 6)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s %*s %*s  %s", nameW, "Name", moneyW, "Paid", moneyW, "Owed", "Settled")))
	b.WriteString("\n")
	for i, pb := range a.balances {
		pct := 1.0
		if total := pb.Total(); total > 0 {
			pct = pb.Paid / total
		}
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(pb.Name, nameW))))
		b.WriteString(" ")
		b.WriteString(paidStyle.Render(fmt.Sprintf("%*s", moneyW, a.money(pb.Paid))))
		b.WriteString(" ")
		b.WriteString(owedStyle.Render(fmt.Sprintf("%*s", moneyW, a.money(pb.Owed))))
		b.WriteString("  ")
		b.WriteString(components.SettleBar("", pct, 0, barW))
		if i < len(a.balances)-1 {
			b.WriteString("\n")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards, components.ContentCard("Balances", b.String(), cw, false))
}
