package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/splitlog/internal/config"
	"github.com/theirongolddev/splitlog/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default category: %s\n", cfg.General.DefaultCategory)
	fmt.Printf("    Currency:         %s\n", cfg.General.Currency)
	fmt.Println()

	opts := config.StoreOptions(cfg)
	if flagBackend != "" {
		opts.Backend = flagBackend
	}
	if flagDB != "" {
		opts.Path = flagDB
	}
	fmt.Println("  [Storage]")
	fmt.Printf("    Backend:   %s\n", opts.Backend)
	switch opts.Backend {
	case store.BackendRedis:
		if opts.RedisURL != "" {
			fmt.Printf("    Redis URL: %s\n", redactURL(opts.RedisURL))
		} else {
			fmt.Println("    Redis URL: not configured")
		}
	case store.BackendMemory:
		fmt.Println("    Nothing is saved between runs.")
	default:
		fmt.Printf("    Database:  %s\n", opts.Path)
	}
	fmt.Println()

	fmt.Println("  [Split]")
	fmt.Printf("    Remainder: %s\n", cfg.Split.Remainder)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `splitlog setup` to reconfigure.")
	return nil
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "(unparseable)"
	}
	return u.Redacted()
}
