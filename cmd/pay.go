package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/splitlog/internal/cli"
)

var payCmd = &cobra.Command{
	Use:   "pay <id> <name>",
	Short: "Toggle whether a participant has paid their share",
	Long: "Flip the paid flag of <name> on the expense whose id starts with <id>. " +
		"Running it twice restores the original state.",
	Args: cobra.ExactArgs(2),
	RunE: runPay,
}

func init() {
	rootCmd.AddCommand(payCmd)
}

func runPay(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	e, err := s.repo.Resolve(args[0])
	if err != nil {
		return err
	}
	name := args[1]
	updated, err := s.repo.TogglePaid(cmd.Context(), e.ID, name)
	if err != nil {
		return err
	}

	state := "unpaid"
	if updated.Friends[updated.ShareIndex(name)].Paid {
		state = "paid"
	}
	fmt.Printf("  %s marked %s on %s\n", name, state, updated.Title)
	fmt.Printf("  %s\n", cli.RenderProgressBar(updated.PaidCount(), len(updated.Friends), 12))
	if updated.Settled() {
		note("Everyone has paid. `splitlog delete %s` removes it.", cli.ShortID(updated.ID))
	}
	return nil
}
