// Package expense builds validated Expense records from raw user input.
package expense

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/splitlog/internal/model"
)

// Factory creates expenses. The zero value is usable: it assigns
// model.DefaultCategory, RemainderNone, the local clock and random UUIDs.
type Factory struct {
	Category  string
	Remainder RemainderPolicy
	Now       func() time.Time
	NewID     func() string
}

// NewFactory returns a Factory with the given category and remainder policy.
func NewFactory(category string, remainder RemainderPolicy) *Factory {
	return &Factory{Category: category, Remainder: remainder}
}

// Create validates the raw fields and assembles a new expense with equal
// shares, all unpaid. participants is a comma-separated list of names.
// An empty date defaults to today. Create has no side effects.
func (f *Factory) Create(title string, amount float64, participants, date string) (model.Expense, error) {
	return f.CreateWithCategory(title, amount, participants, date, "")
}

// CreateWithCategory is Create with a per-expense category override.
// An empty category falls back to the factory's category.
func (f *Factory) CreateWithCategory(title string, amount float64, participants, date, category string) (model.Expense, error) {
	title = strings.TrimSpace(title)
	if err := ValidateTitle(title); err != nil {
		return model.Expense{}, err
	}
	if err := ValidateAmount(amount); err != nil {
		return model.Expense{}, err
	}
	names, err := ParseParticipants(participants)
	if err != nil {
		return model.Expense{}, err
	}
	date, err = f.resolveDate(date)
	if err != nil {
		return model.Expense{}, err
	}

	shares := SplitEqually(decimal.NewFromFloat(amount), len(names), f.remainder())
	friends := make([]model.ParticipantShare, len(names))
	for i, name := range names {
		friends[i] = model.ParticipantShare{
			Name:  name,
			Share: shares[i].InexactFloat64(),
			Paid:  false,
		}
	}

	if category = strings.TrimSpace(category); category == "" {
		category = f.category()
	}

	return model.Expense{
		ID:       f.newID(),
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
		Friends:  friends,
	}, nil
}

// ValidateTitle rejects a blank title.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return invalid("title", "must not be empty")
	}
	return nil
}

// ValidateAmount rejects NaN, infinities, zero and negative amounts.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return invalid("amount", "must be a finite number")
	}
	if amount <= 0 {
		return invalid("amount", "must be positive, got %v", amount)
	}
	return nil
}

// ValidateDate accepts an empty string or a YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return invalid("date", "%q is not a YYYY-MM-DD date", date)
	}
	return nil
}

// ParseParticipants splits a comma-separated list of names, trims each one
// and drops empty segments. It fails when no names remain or when a name
// appears twice.
func ParseParticipants(s string) ([]string, error) {
	var names []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			return nil, invalid("participants", "%q is listed more than once", name)
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, invalid("participants", "at least one name is required")
	}
	return names, nil
}

func (f *Factory) resolveDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return f.now().Format(model.DateLayout), nil
	}
	if err := ValidateDate(date); err != nil {
		return "", err
	}
	return date, nil
}

func (f *Factory) category() string {
	if f.Category == "" {
		return model.DefaultCategory
	}
	return f.Category
}

func (f *Factory) remainder() RemainderPolicy {
	if f.Remainder == "" {
		return RemainderNone
	}
	return f.Remainder
}

func (f *Factory) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f *Factory) newID() string {
	if f.NewID != nil {
		return f.NewID()
	}
	return uuid.New().String()
}
