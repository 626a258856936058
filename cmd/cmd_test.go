package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/splitlog/internal/expense"
	"github.com/theirongolddev/splitlog/internal/ledger"
	"github.com/theirongolddev/splitlog/internal/model"
	"github.com/theirongolddev/splitlog/internal/store"
)

func resetFlags() {
	flagDB, flagBackend, flagQuiet, flagLogFile = "", "", false, ""
	addTitle, addAmount, addWith, addDate, addCategory = "", "", "", "", ""
	listAll, deleteForce, clearYes = false, false, false
	exportOutput = ""
}

func run(t *testing.T, db string, args ...string) error {
	t.Helper()
	resetFlags()
	rootCmd.SetArgs(append([]string{"--db", db, "--quiet"}, args...))
	return rootCmd.ExecuteContext(context.Background())
}

func stored(t *testing.T, db string) []model.Expense {
	t.Helper()
	kv, err := store.OpenSQLite(db)
	require.NoError(t, err)
	defer func() { _ = kv.Close() }()
	expenses, err := store.NewGateway(kv).Load(context.Background())
	require.NoError(t, err)
	return expenses
}

func newDB(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SPLITLOG_REDIS_URL", "")
	return filepath.Join(t.TempDir(), "splitlog.db")
}

func TestAddPayDeleteFlow(t *testing.T) {
	db := newDB(t)

	require.NoError(t, run(t, db, "add", "--title", "Dinner", "--amount", "300", "--with", "A, B, C", "--date", "2025-07-15"))
	got := stored(t, db)
	require.Len(t, got, 1)
	e := got[0]
	assert.Equal(t, "Dinner", e.Title)
	assert.Equal(t, "Food", e.Category)
	require.Len(t, e.Friends, 3)
	assert.Equal(t, 100.0, e.Friends[0].Share)

	prefix := e.ID[:8]
	require.NoError(t, run(t, db, "pay", prefix, "B"))
	assert.True(t, stored(t, db)[0].Friends[1].Paid)

	err := run(t, db, "delete", prefix)
	require.Error(t, err, "unsettled expense must not be deleted without --force")
	assert.Len(t, stored(t, db), 1)

	require.NoError(t, run(t, db, "pay", prefix, "A"))
	require.NoError(t, run(t, db, "pay", prefix, "C"))
	require.NoError(t, run(t, db, "delete", prefix))
	assert.Empty(t, stored(t, db))
}

func TestPayUnknownParticipant(t *testing.T) {
	db := newDB(t)
	require.NoError(t, run(t, db, "add", "-t", "Cab", "-a", "40", "-w", "A,B"))
	id := stored(t, db)[0].ID

	err := run(t, db, "pay", id, "Z")
	assert.True(t, errors.Is(err, ledger.ErrNotFound), "got %v", err)
	assert.False(t, stored(t, db)[0].Friends[0].Paid)

	err = run(t, db, "pay", "nope", "A")
	assert.True(t, errors.Is(err, ledger.ErrNotFound), "got %v", err)
}

func TestAddRejectsInvalidInput(t *testing.T) {
	db := newDB(t)

	err := run(t, db, "add", "-t", "Cab", "-a", "-4", "-w", "A")
	assert.True(t, errors.Is(err, expense.ErrValidation), "got %v", err)

	err = run(t, db, "add", "-t", "Cab", "-a", "4", "-w", "A,A")
	assert.True(t, errors.Is(err, expense.ErrValidation), "got %v", err)

	assert.Empty(t, stored(t, db))
}

func TestForceDeleteAndClear(t *testing.T) {
	db := newDB(t)
	require.NoError(t, run(t, db, "add", "-t", "Cab", "-a", "40", "-w", "A,B"))
	require.NoError(t, run(t, db, "add", "-t", "Tea", "-a", "10", "-w", "A,B", "-c", "Drinks"))
	require.NoError(t, run(t, db, "add", "-t", "Film", "-a", "25", "-w", "C"))

	got := stored(t, db)
	require.Len(t, got, 3)
	assert.Equal(t, "Drinks", got[1].Category)

	require.NoError(t, run(t, db, "delete", got[0].ID, "--force"))
	assert.Len(t, stored(t, db), 2)

	require.NoError(t, run(t, db, "clear", "--yes"))
	assert.Empty(t, stored(t, db))
}

func TestReadOnlyCommands(t *testing.T) {
	db := newDB(t)

	require.NoError(t, run(t, db, "summary"))
	require.NoError(t, run(t, db, "list"))

	require.NoError(t, run(t, db, "add", "-t", "Dinner", "-a", "100", "-w", "X,Y,Z"))
	require.NoError(t, run(t, db, "list"))
	require.NoError(t, run(t, db, "list", "--all"))
	require.NoError(t, run(t, db, "summary"))
	require.NoError(t, run(t, db))
	require.NoError(t, run(t, db, "config"))
}

func TestUnknownBackendFails(t *testing.T) {
	db := newDB(t)
	resetFlags()
	rootCmd.SetArgs([]string{"--db", db, "--backend", "etcd", "list"})
	assert.Error(t, rootCmd.ExecuteContext(context.Background()))
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newDB(t)
	require.NoError(t, run(t, src, "add", "-t", "Dinner", "-a", "300", "-w", "A,B,C", "--date", "2025-07-15"))
	require.NoError(t, run(t, src, "add", "-t", "Cab", "-a", "40", "-w", "A,B", "--date", "2025-07-16", "-c", "Travel"))

	out := filepath.Join(t.TempDir(), "expenses.json")
	require.NoError(t, run(t, src, "export", "-o", out))

	dst := filepath.Join(t.TempDir(), "other.db")
	require.NoError(t, run(t, dst, "import", out))
	assert.Equal(t, stored(t, src), stored(t, dst))

	// Second import adds nothing.
	require.NoError(t, run(t, dst, "import", out))
	assert.Len(t, stored(t, dst), 2)
}

func TestImportMissingFile(t *testing.T) {
	db := newDB(t)
	err := run(t, db, "import", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
