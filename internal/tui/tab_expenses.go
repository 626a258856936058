package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/splitlog/internal/cli"
	"github.com/theirongolddev/splitlog/internal/model"
	"github.com/theirongolddev/splitlog/internal/tui/components"
	"github.com/theirongolddev/splitlog/internal/tui/theme"
)

const cardChrome = 3 // border top/bottom plus the card title line

func (a App) renderExpensesTab(cw, h int) string {
	list := a.visible()

	if a.isCompactLayout() {
		detailH := 0
		detail := ""
		if e, ok := a.selected(); ok {
			detail = a.renderExpenseDetail(e, cw)
			detailH = lipgloss.Height(detail)
		}
		listH := max(h-detailH-cardChrome, 3)
		return lipgloss.JoinVertical(lipgloss.Left,
			a.renderExpenseList(list, cw, listH),
			detail,
		)
	}

	widths := components.LayoutRow(cw, 2)
	listW := widths[0] + widths[1]/5
	detailW := cw - listW

	left := a.renderExpenseList(list, listW, max(h-cardChrome, 3))
	right := ""
	if e, ok := a.selected(); ok {
		right = a.renderExpenseDetail(e, detailW)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (a App) renderExpenseList(list []model.Expense, w, rows int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)

	title := "Expenses"
	if a.outstandingOnly {
		title = "Outstanding"
	}
	title = fmt.Sprintf("%s (%d)", title, len(list))

	if len(list) == 0 {
		empty := "No expenses yet. Press a to add one."
		if a.outstandingOnly && len(a.expenses) > 0 {
			empty = "Everyone has paid up. Press f to show history."
		}
		body := lipgloss.NewStyle().Foreground(t.TextDim).Render(empty)
		return components.ContentCard(title, body, w, true)
	}

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	settledStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	selStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Selected).Bold(true)

	const amountW, statusW = 12, 9
	titleW := max(inner-amountW-statusW-4, 8)

	offset := 0
	if a.cursor >= rows {
		offset = a.cursor - rows + 1
	}
	end := min(offset+rows, len(list))

	var b strings.Builder
	for i := offset; i < end; i++ {
		e := list[i]
		marker := "  "
		if i == a.cursor {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%-*s %*s %*s",
			marker,
			titleW, truncStr(e.Title, titleW),
			amountW, a.money(e.Amount),
			statusW, shortStatus(e),
		)
		switch {
		case i == a.cursor:
			b.WriteString(selStyle.Width(inner).Render(line))
		case e.Settled():
			b.WriteString(settledStyle.Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return components.ContentCard(title, b.String(), w, true)
}

func shortStatus(e model.Expense) string {
	if e.Settled() {
		return "settled"
	}
	return fmt.Sprintf("%d/%d", e.PaidCount(), len(e.Friends))
}

func (a App) renderExpenseDetail(e model.Expense, w int) string {
	t := theme.Active
	inner := components.CardInnerWidth(w)

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	paidStyle := lipgloss.NewStyle().Foreground(t.Paid)
	owedStyle := lipgloss.NewStyle().Foreground(t.Owed)
	selStyle := lipgloss.NewStyle().Background(t.Selected).Bold(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(truncStr(e.Title, inner)))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("%s · %s · %s", a.money(e.Amount), e.Category, e.Date)))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render("id " + cli.ShortID(e.ID)))
	b.WriteString("\n\n")

	nameW := 4
	for _, f := range e.Friends {
		nameW = max(nameW, lipgloss.Width(f.Name))
	}
	nameW = min(nameW, max(inner-22, 4))

	for i, f := range e.Friends {
		marker := "  "
		if i == a.shareCursor {
			marker = "▸ "
		}
		state := owedStyle.Render("owes")
		if f.Paid {
			state = paidStyle.Render("paid")
		}
		line := fmt.Sprintf("%s%-*s %12s ", marker, nameW, truncStr(f.Name, nameW), a.money(f.Share)) + state
		if i == a.shareCursor {
			line = selStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	pct := float64(e.PaidCount()) / float64(len(e.Friends))
	b.WriteString(components.SettleBar("Paid", pct, 5, max(inner-12, 6)))

	return components.ContentCard("Details", b.String(), w, false)
}
