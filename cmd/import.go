package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/splitlog/internal/source"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import expenses from a JSON or JSON-lines file",
	Long: "Read expenses from <file> (a JSON array, as written by `splitlog export`, " +
		"or one expense object per line) and append those whose id is not already recorded.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	res, err := source.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	for _, p := range res.Problems {
		slog.Warn("Skipping record", "file", args[0], "error", p)
	}

	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	added, err := s.repo.Import(cmd.Context(), res.Expenses)
	if err != nil {
		return err
	}

	fmt.Printf("  Imported %d expense(s) from %s\n", added, args[0])
	if known := len(res.Expenses) - added; known > 0 {
		note("%d already recorded", known)
	}
	if res.Skipped > 0 {
		note("%d invalid record(s) skipped; set SPLITLOG_LOG_LEVEL=warn for details", res.Skipped)
	}
	return nil
}
