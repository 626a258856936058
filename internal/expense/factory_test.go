package expense

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedFactory(policy RemainderPolicy) *Factory {
	return &Factory{
		Remainder: policy,
		Now: func() time.Time {
			return time.Date(2025, 7, 15, 18, 30, 0, 0, time.Local)
		},
		NewID: func() string { return "exp-1" },
	}
}

func TestCreate_Dinner(t *testing.T) {
	f := fixedFactory(RemainderNone)

	e, err := f.Create("Dinner", 300, "A,B,C", "2025-07-15")
	require.NoError(t, err)

	assert.Equal(t, "exp-1", e.ID)
	assert.Equal(t, "Dinner", e.Title)
	assert.Equal(t, 300.0, e.Amount)
	assert.Equal(t, "Food", e.Category)
	assert.Equal(t, "2025-07-15", e.Date)
	require.Len(t, e.Friends, 3)
	for i, name := range []string{"A", "B", "C"} {
		assert.Equal(t, name, e.Friends[i].Name)
		assert.Equal(t, 100.0, e.Friends[i].Share)
		assert.False(t, e.Friends[i].Paid)
	}
}

func TestCreate_TrimsNamesAndDropsEmptySegments(t *testing.T) {
	f := fixedFactory(RemainderNone)

	e, err := f.Create("  Taxi ", 50, " Ann ,  Bo,,", "2025-01-02")
	require.NoError(t, err)

	assert.Equal(t, "Taxi", e.Title)
	require.Len(t, e.Friends, 2)
	assert.Equal(t, "Ann", e.Friends[0].Name)
	assert.Equal(t, "Bo", e.Friends[1].Name)
	assert.Equal(t, 25.0, e.Friends[0].Share)
}

func TestCreate_DefaultsDateToToday(t *testing.T) {
	e, err := fixedFactory(RemainderNone).Create("Lunch", 10, "A", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-07-15", e.Date)
}

func TestCreate_CategoryOverride(t *testing.T) {
	f := fixedFactory(RemainderNone)
	f.Category = "Travel"

	e, err := f.Create("Train", 10, "A", "")
	require.NoError(t, err)
	assert.Equal(t, "Travel", e.Category)

	e, err = f.CreateWithCategory("Train", 10, "A", "", "Fuel")
	require.NoError(t, err)
	assert.Equal(t, "Fuel", e.Category)
}

func TestCreate_RemainderNoneKeepsIdenticalShares(t *testing.T) {
	e, err := fixedFactory(RemainderNone).Create("Snacks", 100, "X,Y,Z", "2025-07-15")
	require.NoError(t, err)

	sum := 0.0
	for _, f := range e.Friends {
		assert.Equal(t, 33.33, f.Share)
		sum += f.Share
	}
	assert.InDelta(t, 99.99, sum, 1e-9, "identical shares lose one cent")
}

func TestCreate_RemainderFirstAbsorbsLeftover(t *testing.T) {
	e, err := fixedFactory(RemainderFirst).Create("Snacks", 100, "X,Y,Z", "2025-07-15")
	require.NoError(t, err)

	assert.Equal(t, 33.34, e.Friends[0].Share)
	assert.Equal(t, 33.33, e.Friends[1].Share)
	assert.Equal(t, 33.33, e.Friends[2].Share)

	e, err = fixedFactory(RemainderFirst).Create("Cab", 200, "X,Y,Z", "2025-07-15")
	require.NoError(t, err)
	assert.Equal(t, 66.67, e.Friends[0].Share)
	assert.Equal(t, 66.67, e.Friends[1].Share)
	assert.Equal(t, 66.66, e.Friends[2].Share)
}

func TestCreate_RemainderFirstNeverGoesNegative(t *testing.T) {
	e, err := fixedFactory(RemainderFirst).Create("Gum", 0.02, "A,B,C,D", "2025-07-15")
	require.NoError(t, err)

	got := make([]float64, len(e.Friends))
	for i, f := range e.Friends {
		got[i] = f.Share
	}
	assert.Equal(t, []float64{0.01, 0.01, 0, 0}, got)
	assert.NoError(t, Check(e), "created expense must pass import validation")
}

func TestCreate_ShareCountAndSumProperty(t *testing.T) {
	amounts := []float64{0.01, 0.02, 0.03, 0.05, 1, 7.5, 10, 99.99, 100, 123.45, 1000, 33333.33}
	for _, amount := range amounts {
		for n := 1; n <= 12; n++ {
			names := ""
			for i := 0; i < n; i++ {
				if i > 0 {
					names += ","
				}
				names += string(rune('A' + i))
			}

			for _, policy := range Policies {
				e, err := fixedFactory(policy).Create("t", amount, names, "")
				require.NoError(t, err)
				require.Len(t, e.Friends, n)

				sum := decimal.Zero
				for _, f := range e.Friends {
					assert.False(t, f.Paid)
					assert.GreaterOrEqual(t, f.Share, 0.0, "amount=%v n=%d policy=%s", amount, n, policy)
					sum = sum.Add(decimal.NewFromFloat(f.Share))
				}
				assert.NoError(t, Check(e), "amount=%v n=%d policy=%s", amount, n, policy)
				want := decimal.NewFromFloat(amount).Round(2)
				diff := math.Abs(sum.Sub(want).InexactFloat64())
				if policy == RemainderFirst {
					assert.Zero(t, diff, "amount=%v n=%d", amount, n)
				} else {
					assert.LessOrEqual(t, diff, 0.01*float64(n)+1e-9, "amount=%v n=%d", amount, n)
				}
			}
		}
	}
}

func TestCreate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name         string
		title        string
		amount       float64
		participants string
		date         string
		field        string
	}{
		{"empty title", "", 10, "A", "", "title"},
		{"blank title", "   ", 10, "A", "", "title"},
		{"zero amount", "t", 0, "A", "", "amount"},
		{"negative amount", "t", -5, "A", "", "amount"},
		{"nan amount", "t", math.NaN(), "A", "", "amount"},
		{"inf amount", "t", math.Inf(1), "A", "", "amount"},
		{"no participants", "t", 10, "", "", "participants"},
		{"only commas", "t", 10, " , ,", "", "participants"},
		{"duplicate names", "t", 10, "A,B,A", "", "participants"},
		{"bad date", "t", 10, "A", "15/07/2025", "date"},
		{"impossible date", "t", 10, "A", "2025-02-30", "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fixedFactory(RemainderNone).Create(tt.title, tt.amount, tt.participants, tt.date)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestCreate_GeneratesUniqueIDs(t *testing.T) {
	f := NewFactory("", RemainderNone)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		e, err := f.Create("t", 1, "A", "")
		require.NoError(t, err)
		require.NotEmpty(t, e.ID)
		require.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, RemainderNone, p)

	p, err = ParsePolicy("first")
	require.NoError(t, err)
	assert.Equal(t, RemainderFirst, p)

	_, err = ParsePolicy("last")
	assert.Error(t, err)
}
