package model

// Balance holds one participant's settled and outstanding totals.
type Balance struct {
	Paid float64 `json:"paid"`
	Owed float64 `json:"owed"`
}

// Total returns paid plus owed.
func (b Balance) Total() float64 {
	return b.Paid + b.Owed
}

// Summary maps participant name to their balance across all expenses.
type Summary map[string]Balance

// ParticipantBalance is a Summary entry flattened for ordered display.
type ParticipantBalance struct {
	Name string
	Balance
}
