package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/splitlog/internal/source"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every expense as a JSON array",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	expenses := s.repo.Expenses()
	if exportOutput == "" {
		return source.Write(os.Stdout, expenses)
	}
	if err := source.WriteFile(exportOutput, expenses); err != nil {
		return err
	}
	note("Exported %d expense(s) to %s", len(expenses), exportOutput)
	return nil
}
