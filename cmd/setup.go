package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/splitlog/internal/config"
	"github.com/theirongolddev/splitlog/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configuration wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	if !interactive() {
		return errors.New("setup needs an interactive terminal")
	}

	// Start from the existing file, or defaults if it is unreadable.
	cfg, err := config.Load()
	if err != nil {
		note("Ignoring unreadable config: %v", err)
		cfg = config.DefaultConfig()
	}

	vals := tui.SetupValuesFrom(cfg)
	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("running setup: %w", err)
	}
	vals.Apply(&cfg)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `splitlog setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
