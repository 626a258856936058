package settle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/splitlog/internal/expense"
	"github.com/theirongolddev/splitlog/internal/ledger"
	"github.com/theirongolddev/splitlog/internal/model"
	"github.com/theirongolddev/splitlog/internal/store"
)

const tolerance = 0.01

func newLedger(t *testing.T) *ledger.Repository {
	t.Helper()
	r, err := ledger.Open(context.Background(), store.NewGateway(store.NewMemoryKV()))
	require.NoError(t, err)
	return r
}

func mustCreate(t *testing.T, title string, amount float64, names string) model.Expense {
	t.Helper()
	e, err := expense.NewFactory("", expense.RemainderNone).Create(title, amount, names, "2025-07-15")
	require.NoError(t, err)
	return e
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestSummarize_DinnerScenario(t *testing.T) {
	ctx := context.Background()
	r := newLedger(t)
	e := mustCreate(t, "Dinner", 300, "A,B,C")
	require.NoError(t, r.Append(ctx, e))

	s := Summarize(r.Expenses())
	require.Len(t, s, 3)
	for _, name := range []string{"A", "B", "C"} {
		assert.InDelta(t, 0, s[name].Paid, tolerance, name)
		assert.InDelta(t, 100, s[name].Owed, tolerance, name)
	}

	_, err := r.TogglePaid(ctx, e.ID, "A")
	require.NoError(t, err)
	s = Summarize(r.Expenses())
	assert.InDelta(t, 100, s["A"].Paid, tolerance)
	assert.InDelta(t, 0, s["A"].Owed, tolerance)
	assert.InDelta(t, 0, s["B"].Paid, tolerance)
	assert.InDelta(t, 100, s["B"].Owed, tolerance)
	assert.InDelta(t, 0, s["C"].Paid, tolerance)
	assert.InDelta(t, 100, s["C"].Owed, tolerance)
}

func TestSummarize_JoinsNamesAcrossExpenses(t *testing.T) {
	a := mustCreate(t, "Dinner", 300, "A,B,C")
	b := mustCreate(t, "Cab", 40, "A,D")
	b.Friends[0].Paid = true

	s := Summarize([]model.Expense{a, b})
	require.Len(t, s, 4)
	assert.InDelta(t, 20, s["A"].Paid, tolerance)
	assert.InDelta(t, 100, s["A"].Owed, tolerance)
	assert.InDelta(t, 20, s["D"].Owed, tolerance)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	exps := []model.Expense{
		mustCreate(t, "a", 100, "X,Y,Z"),
		mustCreate(t, "b", 10.1, "X,Y"),
		mustCreate(t, "c", 0.3, "Z,X,Y"),
	}
	exps[1].Friends[1].Paid = true

	forward := Summarize(exps)
	reversed := Summarize([]model.Expense{exps[2], exps[1], exps[0]})

	require.Len(t, reversed, len(forward))
	for name, b := range forward {
		assert.InDelta(t, b.Paid, reversed[name].Paid, tolerance, name)
		assert.InDelta(t, b.Owed, reversed[name].Owed, tolerance, name)
	}
	assert.Equal(t, 33.33+5.05+0.1, forward["X"].Owed)
}

func TestSummarize_DeleteExcludesShares(t *testing.T) {
	ctx := context.Background()
	r := newLedger(t)
	keep := mustCreate(t, "Dinner", 300, "A,B,C")
	drop := mustCreate(t, "Movie", 60, "C,D")
	require.NoError(t, r.Append(ctx, keep))
	require.NoError(t, r.Append(ctx, drop))

	require.NoError(t, r.Delete(ctx, drop.ID))
	s := Summarize(r.Expenses())

	_, hasD := s["D"]
	assert.False(t, hasD)
	assert.InDelta(t, 100, s["C"].Owed, tolerance)
}

func TestSummarize_ClearYieldsEmpty(t *testing.T) {
	ctx := context.Background()
	r := newLedger(t)
	require.NoError(t, r.Append(ctx, mustCreate(t, "Dinner", 300, "A,B,C")))
	require.NoError(t, r.Clear(ctx))

	assert.Empty(t, Summarize(r.Expenses()))
}

func TestSortedAndTotals(t *testing.T) {
	s := model.Summary{
		"Cara": {Paid: 5, Owed: 1},
		"Abe":  {Paid: 0, Owed: 10},
		"Bo":   {Paid: 2.5, Owed: 10},
	}

	sorted := Sorted(s)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Abe", sorted[0].Name)
	assert.Equal(t, "Bo", sorted[1].Name)
	assert.Equal(t, "Cara", sorted[2].Name)

	byOwed := ByOwed(sorted)
	assert.Equal(t, "Abe", byOwed[0].Name)
	assert.Equal(t, "Bo", byOwed[1].Name)
	assert.Equal(t, "Cara", byOwed[2].Name)

	total := Totals(s)
	assert.Equal(t, 7.5, total.Paid)
	assert.Equal(t, 21.0, total.Owed)
}

func TestTotalSpent(t *testing.T) {
	assert.Equal(t, 0.0, TotalSpent(nil))
	assert.Equal(t, 0.3, TotalSpent([]model.Expense{{Amount: 0.1}, {Amount: 0.2}}))
}
