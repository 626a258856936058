package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/splitlog/internal/cli"
	"github.com/theirongolddev/splitlog/internal/settle"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show what each person has paid and still owes",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	expenses := s.repo.Expenses()
	if len(expenses) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		note("Run `splitlog add` to record one.")
		return nil
	}

	summary := settle.Summarize(expenses)
	totals := settle.Totals(summary)

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPLITLOG  Balances"))
	fmt.Println()

	rows := make([][]string, 0, len(summary)+2)
	for _, pb := range settle.Sorted(summary) {
		owed := s.money(pb.Owed)
		if pb.Owed > 0 {
			owed = cli.RenderOwed(owed)
		}
		rows = append(rows, []string{pb.Name, cli.RenderPaid(s.money(pb.Paid)), owed, s.money(pb.Total())})
	}
	rows = append(rows,
		[]string{cli.SeparatorRow},
		[]string{"Total", s.money(totals.Paid), s.money(totals.Owed), s.money(totals.Total())},
	)

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Paid", "Owed", "Total"},
		Rows:    rows,
		Align:   []cli.Align{cli.AlignLeft, cli.AlignRight, cli.AlignRight, cli.AlignRight},
	}))

	outstanding := len(s.repo.Outstanding())
	fmt.Printf("\n  %d expenses, %d outstanding, %s spent\n",
		len(expenses), outstanding, s.money(settle.TotalSpent(expenses)))
	if totals.Total() > 0 {
		fmt.Printf("  %s of shares collected\n", cli.FormatPercent(totals.Paid/totals.Total()))
	}
	if at, ok, err := s.gw.LastSaved(cmd.Context()); err == nil && ok {
		note("Last saved %s", at.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
