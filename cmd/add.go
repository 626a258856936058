package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/splitlog/internal/cli"
	"github.com/theirongolddev/splitlog/internal/expense"
	"github.com/theirongolddev/splitlog/internal/model"
	"github.com/theirongolddev/splitlog/internal/tui"
)

var (
	addTitle    string
	addAmount   string
	addWith     string
	addDate     string
	addCategory string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a shared expense",
	Example: `  splitlog add --title Dinner --amount 300 --with "A, B, C"
  splitlog add            # prompts for everything`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "What the money was spent on")
	addCmd.Flags().StringVarP(&addAmount, "amount", "a", "", "Total amount")
	addCmd.Flags().StringVarP(&addWith, "with", "w", "", "Comma-separated participant names")
	addCmd.Flags().StringVar(&addDate, "date", "", "Date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category (default from config)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	d := expense.Draft{
		Title:        addTitle,
		Amount:       addAmount,
		Participants: addWith,
		Date:         addDate,
		Category:     addCategory,
	}

	if missing := missingFields(d); len(missing) > 0 {
		if !interactive() {
			return fmt.Errorf("missing %s", strings.Join(missing, ", "))
		}
		if form := tui.NewExpenseForm(&d, true); form != nil {
			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Println("  Cancelled.")
					return nil
				}
				return fmt.Errorf("reading expense: %w", err)
			}
		}
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	e, err := s.factory.FromDraft(d)
	if err != nil {
		return err
	}
	if err := s.repo.Append(cmd.Context(), e); err != nil {
		return err
	}

	printAdded(s, e)
	return nil
}

func missingFields(d expense.Draft) []string {
	var missing []string
	if strings.TrimSpace(d.Title) == "" {
		missing = append(missing, "--title")
	}
	if strings.TrimSpace(d.Amount) == "" {
		missing = append(missing, "--amount")
	}
	if strings.TrimSpace(d.Participants) == "" {
		missing = append(missing, "--with")
	}
	return missing
}

func printAdded(s *session, e model.Expense) {
	fmt.Printf("\n  Added %s (%s): %s on %s, %s\n\n",
		e.Title, cli.ShortID(e.ID), s.money(e.Amount), e.Date, e.Category)

	rows := make([][]string, len(e.Friends))
	for i, f := range e.Friends {
		rows[i] = []string{f.Name, s.money(f.Share)}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Share"},
		Rows:    rows,
		Align:   []cli.Align{cli.AlignLeft, cli.AlignRight},
	}))
}
