// Package tui provides the interactive Bubble Tea dashboard for splitlog.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/splitlog/internal/cli"
	"github.com/theirongolddev/splitlog/internal/config"
	"github.com/theirongolddev/splitlog/internal/expense"
	"github.com/theirongolddev/splitlog/internal/ledger"
	"github.com/theirongolddev/splitlog/internal/model"
	"github.com/theirongolddev/splitlog/internal/settle"
	"github.com/theirongolddev/splitlog/internal/tui/components"
	"github.com/theirongolddev/splitlog/internal/tui/theme"
)

// MutationDoneMsg is sent when a repository write finishes.
type MutationDoneMsg struct {
	Flash    string
	SelectID string // expense to move the cursor to, if any
	Err      error
}

// Options configures the dashboard.
type Options struct {
	// Config is the loaded configuration; the Settings tab edits and saves it.
	Config config.Config
}

// App is the root Bubble Tea model.
type App struct {
	repo    *ledger.Repository
	factory *expense.Factory
	cfg     config.Config

	// Snapshot of the repository, refreshed after every write
	expenses []model.Expense
	balances []model.ParticipantBalance
	totals   model.Balance
	spent    float64

	// UI state
	width           int
	height          int
	activeTab       int
	cursor          int
	shareCursor     int
	outstandingOnly bool
	showHelp        bool
	confirmClear    bool
	busy            bool
	flash           string

	keys     keyMap
	help     help.Model
	settings settingsState

	// Add-expense form; draft holds the values it edits
	addForm *huh.Form
	draft   *expense.Draft
}

const (
	tabExpenses = 0
	tabSummary  = 1
	tabSettings = 2

	minTerminalWidth = 60
	compactWidth     = 100
	maxContentWidth  = 160
	minContentHeight = 5

	writeTimeout = 10 * time.Second
)

// NewApp creates the dashboard over an opened repository.
func NewApp(repo *ledger.Repository, factory *expense.Factory, opts Options) App {
	a := App{
		repo:    repo,
		factory: factory,
		cfg:     opts.Config,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	a.refresh()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

func (a *App) refresh() {
	a.expenses = a.repo.Expenses()
	summary := settle.Summarize(a.expenses)
	a.balances = settle.ByOwed(settle.Sorted(summary))
	a.totals = settle.Totals(summary)
	a.spent = settle.TotalSpent(a.expenses)
	a.clampCursor()
}

// visible returns the expenses listed on the Expenses tab.
func (a App) visible() []model.Expense {
	if !a.outstandingOnly {
		return a.expenses
	}
	out := make([]model.Expense, 0, len(a.expenses))
	for _, e := range a.expenses {
		if !e.Settled() {
			out = append(out, e)
		}
	}
	return out
}

func (a App) selected() (model.Expense, bool) {
	list := a.visible()
	if a.cursor < 0 || a.cursor >= len(list) {
		return model.Expense{}, false
	}
	return list[a.cursor], true
}

func (a *App) clampCursor() {
	n := len(a.visible())
	a.cursor = min(max(a.cursor, 0), max(n-1, 0))
	if e, ok := a.selected(); ok {
		a.shareCursor = min(max(a.shareCursor, 0), len(e.Friends)-1)
	} else {
		a.shareCursor = 0
	}
}

func (a *App) selectID(id string) {
	for i, e := range a.visible() {
		if e.ID == id {
			if a.cursor != i {
				a.cursor = i
				a.shareCursor = 0
			}
			return
		}
	}
}

func (a *App) moveCursor(delta int) {
	prev := a.cursor
	a.cursor += delta
	a.clampCursor()
	if a.cursor != prev {
		a.shareCursor = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(a.formWidth())
		}
		return a, nil

	case MutationDoneMsg:
		a.busy = false
		a.refresh()
		if msg.Err != nil {
			a.flash = "Error: " + msg.Err.Error()
			return a, nil
		}
		if msg.SelectID != "" {
			a.selectID(msg.SelectID)
		}
		a.flash = msg.Flash
		return a, nil

	case tea.MouseMsg:
		if a.addForm != nil || a.showHelp || a.settings.editing {
			return a, nil
		}
		return a.handleMouse(msg)

	case tea.KeyMsg:
		if a.addForm != nil {
			if msg.String() == "esc" {
				a.addForm, a.draft = nil, nil
				a.flash = "Add cancelled"
				return a, nil
			}
			return a.updateAddForm(msg)
		}
		// The settings input owns the keyboard while a field is edited
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}
		return a.handleKey(msg)
	}

	// Forward unhandled messages (cursor blinks, etc.) to the active input
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.settings.editing {
		return a.updateSettingsInput(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.flash = ""

	if a.confirmClear {
		a.confirmClear = false
		if k := msg.String(); k == "y" || k == "Y" {
			return a.clear()
		}
		a.flash = "Clear cancelled"
		return a, nil
	}

	if a.showHelp {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		return a, nil
	case key.Matches(msg, a.keys.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case key.Matches(msg, a.keys.Expenses):
		a.activeTab = tabExpenses
		return a, nil
	case key.Matches(msg, a.keys.Summary):
		a.activeTab = tabSummary
		return a, nil
	case key.Matches(msg, a.keys.Settings):
		a.activeTab = tabSettings
		return a, nil
	case key.Matches(msg, a.keys.Add):
		return a.startAdd()
	case key.Matches(msg, a.keys.Clear):
		if len(a.expenses) == 0 {
			a.flash = "Nothing to clear"
			return a, nil
		}
		a.confirmClear = true
		return a, nil
	case key.Matches(msg, a.keys.Outstanding):
		a.outstandingOnly = !a.outstandingOnly
		a.cursor, a.shareCursor = 0, 0
		a.clampCursor()
		return a, nil
	}

	if a.activeTab == tabSettings {
		switch {
		case key.Matches(msg, a.keys.Up):
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
		case key.Matches(msg, a.keys.Down):
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
		case key.Matches(msg, a.keys.Edit):
			return a.settingsStartEdit()
		}
		return a, nil
	}

	if a.activeTab != tabExpenses {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)
	case key.Matches(msg, a.keys.Left):
		if a.shareCursor > 0 {
			a.shareCursor--
		}
	case key.Matches(msg, a.keys.Right):
		if e, ok := a.selected(); ok && a.shareCursor < len(e.Friends)-1 {
			a.shareCursor++
		}
	case key.Matches(msg, a.keys.Toggle):
		return a.togglePaid()
	case key.Matches(msg, a.keys.Delete):
		return a.deleteSelected()
	}
	return a, nil
}

func (a App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabExpenses {
			a.moveCursor(-1)
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabExpenses {
			a.moveCursor(1)
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// ─── Writes ─────────────────────────────────────────────────────

// write runs fn against the repository off the update loop.
func (a App) write(flash, selectID string, fn func(ctx context.Context, r *ledger.Repository) error) tea.Cmd {
	repo := a.repo
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		return MutationDoneMsg{Flash: flash, SelectID: selectID, Err: fn(ctx, repo)}
	}
}

func (a App) togglePaid() (tea.Model, tea.Cmd) {
	if a.busy {
		a.flash = "Saving…"
		return a, nil
	}
	e, ok := a.selected()
	if !ok || a.shareCursor >= len(e.Friends) {
		return a, nil
	}
	share := e.Friends[a.shareCursor]
	state := "paid"
	if share.Paid {
		state = "unpaid"
	}

	a.busy = true
	flash := fmt.Sprintf("%s marked %s for %s", share.Name, state, e.Title)
	return a, a.write(flash, e.ID, func(ctx context.Context, r *ledger.Repository) error {
		_, err := r.TogglePaid(ctx, e.ID, share.Name)
		return err
	})
}

func (a App) deleteSelected() (tea.Model, tea.Cmd) {
	if a.busy {
		a.flash = "Saving…"
		return a, nil
	}
	e, ok := a.selected()
	if !ok {
		return a, nil
	}
	if !e.Settled() {
		a.flash = fmt.Sprintf("Only settled expenses can be deleted (%s)", cli.FormatStatus(e))
		return a, nil
	}

	a.busy = true
	return a, a.write("Deleted "+e.Title, "", func(ctx context.Context, r *ledger.Repository) error {
		return r.Delete(ctx, e.ID)
	})
}

func (a App) clear() (tea.Model, tea.Cmd) {
	if a.busy {
		a.flash = "Saving…"
		return a, nil
	}
	a.busy = true
	return a, a.write("History cleared", "", func(ctx context.Context, r *ledger.Repository) error {
		return r.Clear(ctx)
	})
}

// ─── Add form ───────────────────────────────────────────────────

func (a App) startAdd() (tea.Model, tea.Cmd) {
	a.draft = &expense.Draft{}
	a.addForm = NewExpenseForm(a.draft, false)
	if a.width > 0 {
		a.addForm = a.addForm.WithWidth(a.formWidth())
	}
	return a, a.addForm.Init()
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		d := *a.draft
		a.addForm, a.draft = nil, nil
		return a.submitDraft(d)
	case huh.StateAborted:
		a.addForm, a.draft = nil, nil
		a.flash = "Add cancelled"
		return a, nil
	}
	return a, cmd
}

func (a App) submitDraft(d expense.Draft) (tea.Model, tea.Cmd) {
	e, err := a.factory.FromDraft(d)
	if err != nil {
		a.flash = err.Error()
		return a, nil
	}
	a.busy = true
	a.activeTab = tabExpenses
	return a, a.write("Added "+e.Title, e.ID, func(ctx context.Context, r *ledger.Repository) error {
		return r.Append(ctx, e)
	})
}

func (a App) formWidth() int {
	return min(a.contentWidth()-8, 72)
}

// ─── Views ──────────────────────────────────────────────────────

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) money(v float64) string {
	return cli.FormatMoney(a.cfg.General.Currency, v)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.addForm != nil {
		return a.viewAddForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  splitlog needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewAddForm() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	body := titleStyle.Render("Add expense") + "\n\n" +
		a.addForm.View() + "\n" +
		hintStyle.Render("esc to cancel")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(body)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewHelp() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	body := titleStyle.Render("Keyboard Shortcuts") + "\n\n" +
		a.help.FullHelpView(a.keys.FullHelp()) + "\n\n" +
		dimStyle.Render("Press any key to close")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3).
		Render(body)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab, w)

	flash := a.flash
	if a.confirmClear {
		flash = fmt.Sprintf("Clear all %d expenses? y/n", len(a.expenses))
	}
	right := fmt.Sprintf("%d expenses · %s outstanding", len(a.expenses), a.money(a.totals.Owed))
	hm := a.help
	hm.Width = max(w-lipgloss.Width(right)-3, 10)
	statusBar := components.RenderStatusBar(w, hm.ShortHelpView(a.keys.ShortHelp()), right, flash)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabSummary:
		content = a.renderSummaryTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow RenderTabBar: tabs separated by one column.
func tabAtX(x int) int {
	pos := 0
	for i := range components.Tabs {
		w := components.TabVisualWidth(i)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
