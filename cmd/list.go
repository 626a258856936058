package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/splitlog/internal/cli"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List outstanding expenses (--all for full history)",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "Include settled expenses")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	title := "Outstanding"
	expenses := s.repo.Outstanding()
	if listAll {
		title = "History"
		expenses = s.repo.Expenses()
	}

	if len(expenses) == 0 {
		if !listAll && s.repo.Len() > 0 {
			fmt.Println("\n  Everyone has paid up.")
			note("Run `splitlog list --all` to see settled expenses.")
			return nil
		}
		fmt.Println("\n  No expenses recorded yet.")
		note("Run `splitlog add` to record one.")
		return nil
	}

	rows := make([][]string, len(expenses))
	for i, e := range expenses {
		rows[i] = []string{
			cli.ShortID(e.ID),
			e.Date,
			e.Title,
			e.Category,
			s.money(e.Amount),
			cli.FormatStatus(e),
			cli.FormatShares(e),
		}
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s (%d)", title, len(expenses)),
		Headers: []string{"ID", "Date", "Title", "Category", "Amount", "Status", "Shares"},
		Rows:    rows,
		Align: []cli.Align{
			cli.AlignLeft, cli.AlignLeft, cli.AlignLeft, cli.AlignLeft,
			cli.AlignRight, cli.AlignRight, cli.AlignLeft,
		},
	}))
	return nil
}
