package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/splitlog/internal/config"
	"github.com/theirongolddev/splitlog/internal/expense"
	"github.com/theirongolddev/splitlog/internal/tui/components"
	"github.com/theirongolddev/splitlog/internal/tui/theme"
)

const (
	settingsFieldCurrency = iota
	settingsFieldCategory
	settingsFieldRemainder
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 40
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false
	a.settings.saveErr = nil

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldCurrency:
		ti.Placeholder = "₹"
		ti.SetValue(a.cfg.General.Currency)
	case settingsFieldCategory:
		ti.Placeholder = "Food"
		ti.SetValue(a.cfg.General.DefaultCategory)
	case settingsFieldRemainder:
		ti.Placeholder = "none or first"
		ti.SetValue(a.cfg.Split.Remainder)
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	}

	ti.Focus()
	a.settings.input = ti
	return a, textinput.Blink
}

func (a App) updateSettingsInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			a.settingsSave()
			a.settings.editing = false
			a.settings.saved = a.settings.saveErr == nil
			return a, nil
		case "esc":
			a.settings.editing = false
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave writes the edited field to the config file and applies it to
// the running dashboard. An invalid value leaves both untouched.
func (a *App) settingsSave() {
	cfg := a.cfg
	val := a.settings.input.Value()

	switch a.settings.cursor {
	case settingsFieldCurrency:
		cfg.General.Currency = val
	case settingsFieldCategory:
		cfg.General.DefaultCategory = strings.TrimSpace(val)
	case settingsFieldRemainder:
		cfg.Split.Remainder = strings.ToLower(strings.TrimSpace(val))
	case settingsFieldTheme:
		cfg.Appearance.Theme = strings.TrimSpace(val)
	}

	policy, err := expense.ParsePolicy(cfg.Split.Remainder)
	if err != nil {
		a.settings.saveErr = err
		return
	}
	if err := config.Save(cfg); err != nil {
		a.settings.saveErr = err
		return
	}

	a.cfg = cfg
	a.factory.Category = cfg.General.DefaultCategory
	a.factory.Remainder = policy
	theme.SetActive(cfg.Appearance.Theme)
	a.settings.saveErr = nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Selected).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Selected).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Selected)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent)

	notSet := func(s string) string {
		if s == "" {
			return "(not set)"
		}
		return s
	}

	fields := []struct {
		label string
		value string
	}{
		{"Currency", notSet(a.cfg.General.Currency)},
		{"Default Category", notSet(a.cfg.General.DefaultCategory)},
		{"Remainder", notSet(a.cfg.Split.Remainder)},
		{"Theme", notSet(a.cfg.Appearance.Theme)},
	}

	innerW := components.CardInnerWidth(cw)

	var form strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			form.WriteString(markerStyle.Render("▸ "))
			form.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			form.WriteString(a.settings.input.View())
			form.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			form.WriteString(marker + label + value)
			if pad := innerW - lipgloss.Width(marker) - lipgloss.Width(label) - lipgloss.Width(value); pad > 0 {
				form.WriteString(lipgloss.NewStyle().Background(t.Selected).Render(strings.Repeat(" ", pad)))
			}
		} else {
			form.WriteString("  ")
			form.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			form.WriteString(valueStyle.Render(f.value))
		}
		form.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		form.WriteString("\n")
		form.WriteString(lipgloss.NewStyle().Foreground(t.Warning).Render(truncStr("Save failed: "+a.settings.saveErr.Error(), innerW)))
		form.WriteString("\n")
	} else if a.settings.saved {
		form.WriteString("\n")
		form.WriteString(lipgloss.NewStyle().Foreground(t.Paid).Render("Saved"))
		form.WriteString("\n")
	}

	form.WriteString("\n")
	form.WriteString(labelStyle.Render("[j/k] navigate  [enter] edit  [esc] cancel"))

	var info strings.Builder
	info.WriteString(labelStyle.Render("Config file: ") + valueStyle.Render(truncStr(config.ConfigPath(), max(innerW-13, 10))) + "\n")
	info.WriteString(labelStyle.Render("Storage:     ") + valueStyle.Render(notSet(a.cfg.Storage.Backend)) + "\n")
	info.WriteString(labelStyle.Render("Expenses:    ") + valueStyle.Render(fmt.Sprintf("%d", len(a.expenses))))

	return lipgloss.JoinVertical(lipgloss.Left,
		components.ContentCard("Settings", form.String(), cw, a.settings.editing),
		components.ContentCard("General", info.String(), cw, false),
	)
}
