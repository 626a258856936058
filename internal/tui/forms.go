package tui

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/splitlog/internal/config"
	"github.com/theirongolddev/splitlog/internal/expense"
	"github.com/theirongolddev/splitlog/internal/store"
	"github.com/theirongolddev/splitlog/internal/tui/theme"
)

// NewExpenseForm builds a form that fills d. Fields that already hold a
// value are skipped when onlyMissing is set, so CLI flags and prompts mix.
func NewExpenseForm(d *expense.Draft, onlyMissing bool) *huh.Form {
	skip := func(v string) bool { return onlyMissing && strings.TrimSpace(v) != "" }

	var fields []huh.Field
	if !skip(d.Title) {
		fields = append(fields, huh.NewInput().
			Title("Title").
			Placeholder("Dinner").
			Value(&d.Title).
			Validate(func(s string) error {
				return expense.ValidateTitle(strings.TrimSpace(s))
			}))
	}
	if !skip(d.Amount) {
		fields = append(fields, huh.NewInput().
			Title("Amount").
			Placeholder("300").
			Value(&d.Amount).
			Validate(func(s string) error {
				_, err := expense.ParseAmount(s)
				return err
			}))
	}
	if !skip(d.Participants) {
		fields = append(fields, huh.NewInput().
			Title("Split with").
			Description("Comma-separated names").
			Placeholder("A, B, C").
			Value(&d.Participants).
			Validate(func(s string) error {
				_, err := expense.ParseParticipants(s)
				return err
			}))
	}
	if !onlyMissing {
		fields = append(fields,
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, blank for today").
				Value(&d.Date).
				Validate(expense.ValidateDate),
			huh.NewInput().
				Title("Category").
				Description("Blank for the default category").
				Value(&d.Category),
		)
	}
	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true)
}

// SetupValues holds the wizard's answers.
type SetupValues struct {
	Currency        string
	DefaultCategory string
	Backend         string
	RedisURL        string
	Remainder       string
	Theme           string
}

// SetupValuesFrom seeds the wizard with the current configuration.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Currency:        cfg.General.Currency,
		DefaultCategory: cfg.General.DefaultCategory,
		Backend:         cfg.Storage.Backend,
		RedisURL:        cfg.Storage.RedisURL,
		Remainder:       cfg.Split.Remainder,
		Theme:           cfg.Appearance.Theme,
	}
}

// Apply copies the answers onto cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	cfg.General.Currency = strings.TrimSpace(v.Currency)
	cfg.General.DefaultCategory = strings.TrimSpace(v.DefaultCategory)
	cfg.Storage.Backend = v.Backend
	cfg.Storage.RedisURL = strings.TrimSpace(v.RedisURL)
	cfg.Split.Remainder = v.Remainder
	cfg.Appearance.Theme = v.Theme
}

// NewSetupForm builds the configuration wizard.
func NewSetupForm(v *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to splitlog").
				Description("Track shared expenses and who still owes what.\n"),
			huh.NewInput().
				Title("Currency symbol").
				Value(&v.Currency),
			huh.NewInput().
				Title("Default category").
				Value(&v.DefaultCategory),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Storage backend").
				Options(
					huh.NewOption("SQLite file (recommended)", store.BackendSQLite),
					huh.NewOption("Redis", store.BackendRedis),
					huh.NewOption("Memory (nothing is saved)", store.BackendMemory),
				).
				Value(&v.Backend),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Redis URL").
				Placeholder("redis://localhost:6379/0").
				Value(&v.RedisURL),
		).WithHideFunc(func() bool { return v.Backend != store.BackendRedis }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Rounding leftover").
				Description("Where the cent left over from an uneven split goes").
				Options(
					huh.NewOption("Nobody (identical shares)", string(expense.RemainderNone)),
					huh.NewOption("First person listed", string(expense.RemainderFirst)),
				).
				Value(&v.Remainder),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&v.Theme),
		),
	)
}
