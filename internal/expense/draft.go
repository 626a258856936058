package expense

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/splitlog/internal/model"
)

// Draft holds expense fields as typed by a user, before parsing.
type Draft struct {
	Title        string
	Amount       string
	Participants string
	Date         string
	Category     string
}

// ParseAmount parses a user-typed amount and validates it.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalid("amount", "is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalid("amount", "%q is not a number", s)
	}
	if err := ValidateAmount(v); err != nil {
		return 0, err
	}
	return v, nil
}

// FromDraft parses d and creates the expense.
func (f *Factory) FromDraft(d Draft) (model.Expense, error) {
	amount, err := ParseAmount(d.Amount)
	if err != nil {
		return model.Expense{}, err
	}
	return f.CreateWithCategory(d.Title, amount, d.Participants, d.Date, d.Category)
}
