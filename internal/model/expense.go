// Package model defines domain types for splitlog expenses and balances.
package model

// DateLayout is the calendar date format used for Expense.Date.
const DateLayout = "2006-01-02"

// DefaultCategory is applied when no category is configured.
const DefaultCategory = "Food"

// ParticipantShare is one participant's equal share of an expense.
type ParticipantShare struct {
	Name  string  `json:"name"`
	Share float64 `json:"share"`
	Paid  bool    `json:"paid"`
}

// Expense is one recorded spending event split among participants.
// Only the Paid flag of each share changes after creation.
type Expense struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Amount   float64            `json:"amount"`
	Category string             `json:"category"`
	Date     string             `json:"date"`
	Friends  []ParticipantShare `json:"friends"`
}

// Clone returns a deep copy of the expense.
func (e Expense) Clone() Expense {
	cp := e
	if e.Friends != nil {
		cp.Friends = make([]ParticipantShare, len(e.Friends))
		copy(cp.Friends, e.Friends)
	}
	return cp
}

// Settled reports whether every participant has paid their share.
func (e Expense) Settled() bool {
	for _, f := range e.Friends {
		if !f.Paid {
			return false
		}
	}
	return true
}

// PaidCount returns how many participants have paid.
func (e Expense) PaidCount() int {
	n := 0
	for _, f := range e.Friends {
		if f.Paid {
			n++
		}
	}
	return n
}

// ShareIndex returns the index of the first share belonging to name, or -1.
func (e Expense) ShareIndex(name string) int {
	for i, f := range e.Friends {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// CloneAll deep-copies a slice of expenses. A nil input yields an empty,
// non-nil slice so callers can serialize it as an empty array.
func CloneAll(expenses []Expense) []Expense {
	out := make([]Expense, len(expenses))
	for i, e := range expenses {
		out[i] = e.Clone()
	}
	return out
}
