package expense

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/splitlog/internal/model"
)

func TestCheckAcceptsCreatedExpense(t *testing.T) {
	e, err := fixedFactory(RemainderFirst).Create("Dinner", 100, "X,Y,Z", "")
	require.NoError(t, err)
	assert.NoError(t, Check(e))
}

func TestCheckRejectsMalformedRecords(t *testing.T) {
	valid := func() model.Expense {
		return model.Expense{
			ID: "e1", Title: "Cab", Amount: 40, Category: "Travel", Date: "2025-07-15",
			Friends: []model.ParticipantShare{{Name: "A", Share: 20}, {Name: "B", Share: 20, Paid: true}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*model.Expense)
		field  string
	}{
		{"no id", func(e *model.Expense) { e.ID = "" }, "id"},
		{"blank title", func(e *model.Expense) { e.Title = "  " }, "title"},
		{"zero amount", func(e *model.Expense) { e.Amount = 0 }, "amount"},
		{"no date", func(e *model.Expense) { e.Date = "" }, "date"},
		{"bad date", func(e *model.Expense) { e.Date = "15/07/2025" }, "date"},
		{"no friends", func(e *model.Expense) { e.Friends = nil }, "participants"},
		{"blank name", func(e *model.Expense) { e.Friends[0].Name = "" }, "participants"},
		{"duplicate name", func(e *model.Expense) { e.Friends[1].Name = "A" }, "participants"},
		{"negative share", func(e *model.Expense) { e.Friends[0].Share = -1 }, "share"},
		{"NaN share", func(e *model.Expense) { e.Friends[0].Share = math.NaN() }, "share"},
	}

	require.NoError(t, Check(valid()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid()
			tt.mutate(&e)
			err := Check(e)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
