package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/splitlog/internal/cli"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a settled expense",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Delete even if some shares are unpaid")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	e, err := s.repo.Resolve(args[0])
	if err != nil {
		return err
	}
	if !e.Settled() && !deleteForce {
		return fmt.Errorf("%s still has unpaid shares (%s); use --force to delete it anyway",
			e.Title, cli.FormatStatus(e))
	}

	if err := s.repo.Delete(cmd.Context(), e.ID); err != nil {
		return err
	}
	fmt.Printf("  Deleted %s (%s)\n", e.Title, cli.ShortID(e.ID))
	return nil
}
