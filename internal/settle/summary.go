// Package settle folds expenses into per-participant paid/owed balances.
package settle

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/splitlog/internal/model"
)

type accumulator struct {
	paid decimal.Decimal
	owed decimal.Decimal
}

// Summarize returns, for every participant name across all expenses, the sum
// of shares marked paid and the sum still owed. Names are matched exactly.
// An empty input yields an empty, non-nil summary.
func Summarize(expenses []model.Expense) model.Summary {
	acc := make(map[string]*accumulator)

	for _, e := range expenses {
		for _, f := range e.Friends {
			a, ok := acc[f.Name]
			if !ok {
				a = &accumulator{}
				acc[f.Name] = a
			}
			share := decimal.NewFromFloat(f.Share)
			if f.Paid {
				a.paid = a.paid.Add(share)
			} else {
				a.owed = a.owed.Add(share)
			}
		}
	}

	summary := make(model.Summary, len(acc))
	for name, a := range acc {
		summary[name] = model.Balance{
			Paid: a.paid.InexactFloat64(),
			Owed: a.owed.InexactFloat64(),
		}
	}
	return summary
}

// Sorted flattens a summary into a slice ordered by participant name.
func Sorted(s model.Summary) []model.ParticipantBalance {
	out := make([]model.ParticipantBalance, 0, len(s))
	for name, b := range s {
		out = append(out, model.ParticipantBalance{Name: name, Balance: b})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// ByOwed orders balances by amount owed, largest first, then by name.
func ByOwed(balances []model.ParticipantBalance) []model.ParticipantBalance {
	out := make([]model.ParticipantBalance, len(balances))
	copy(out, balances)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Owed != out[j].Owed {
			return out[i].Owed > out[j].Owed
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Totals sums every participant's balance.
func Totals(s model.Summary) model.Balance {
	paid, owed := decimal.Zero, decimal.Zero
	for _, b := range s {
		paid = paid.Add(decimal.NewFromFloat(b.Paid))
		owed = owed.Add(decimal.NewFromFloat(b.Owed))
	}
	return model.Balance{Paid: paid.InexactFloat64(), Owed: owed.InexactFloat64()}
}

// TotalSpent sums the amounts of all expenses.
func TotalSpent(expenses []model.Expense) float64 {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total.InexactFloat64()
}
