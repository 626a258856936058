// Package cmd implements the splitlog CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/splitlog/internal/cli"
	"github.com/theirongolddev/splitlog/internal/config"
	"github.com/theirongolddev/splitlog/internal/expense"
	"github.com/theirongolddev/splitlog/internal/ledger"
	"github.com/theirongolddev/splitlog/internal/logging"
	"github.com/theirongolddev/splitlog/internal/store"
	"github.com/theirongolddev/splitlog/internal/tui/theme"
)

var (
	flagDB      string
	flagBackend string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "splitlog",
	Short: "Split shared expenses and track who has paid",
	Long: "Record shared expenses, split them equally between friends, " +
		"tick off shares as they are paid and see who still owes what.",
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Setup()
	},
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	// A missing .env is normal.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database file (overrides storage.path)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend: sqlite, redis or memory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notes and hints")
}

// session bundles what every ledger command needs.
type session struct {
	cfg     config.Config
	gw      *store.Gateway
	repo    *ledger.Repository
	factory *expense.Factory
}

// openSession loads config, opens the configured backend and the ledger.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	theme.SetActive(cfg.Appearance.Theme)

	opts := config.StoreOptions(cfg)
	if flagBackend != "" {
		opts.Backend = flagBackend
	}
	if flagDB != "" {
		opts.Path = flagDB
	}

	gw, err := store.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	repo, err := ledger.Open(ctx, gw)
	if err != nil {
		_ = gw.Close()
		return nil, err
	}

	if opts.Backend == store.BackendMemory {
		note("Using the memory backend; changes are not saved")
	}

	policy, err := expense.ParsePolicy(cfg.Split.Remainder)
	if err != nil {
		_ = gw.Close()
		return nil, err
	}

	return &session{
		cfg:     cfg,
		gw:      gw,
		repo:    repo,
		factory: expense.NewFactory(cfg.General.DefaultCategory, policy),
	}, nil
}

func (s *session) Close() error {
	return s.gw.Close()
}

func (s *session) money(v float64) string {
	return cli.FormatMoney(s.cfg.General.Currency, v)
}

// note prints a hint to stderr unless --quiet is set.
func note(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintln(os.Stderr, cli.RenderMuted("  "+fmt.Sprintf(format, args...)))
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}
