package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every expense",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	n := s.repo.Len()
	if !clearYes && n > 0 {
		if !interactive() {
			return errors.New("refusing to clear without confirmation; pass --yes")
		}
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete all %d expenses?", n)).
			Description("This cannot be undone.").
			Affirmative("Delete").
			Negative("Keep").
			Value(&confirmed).
			Run()
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if !confirmed {
			fmt.Println("  Nothing changed.")
			return nil
		}
	}

	if err := s.repo.Clear(cmd.Context()); err != nil {
		return err
	}
	fmt.Printf("  Cleared %d expenses.\n", n)
	return nil
}
