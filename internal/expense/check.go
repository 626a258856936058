package expense

import (
	"math"
	"strings"

	"github.com/theirongolddev/splitlog/internal/model"
)

// Check validates an already-built expense, such as one read from a file.
// It enforces what Create guarantees: an id, a title, a positive amount, a
// valid date and at least one uniquely named participant with a finite,
// non-negative share.
func Check(e model.Expense) error {
	if strings.TrimSpace(e.ID) == "" {
		return invalid("id", "is required")
	}
	if err := ValidateTitle(strings.TrimSpace(e.Title)); err != nil {
		return err
	}
	if err := ValidateAmount(e.Amount); err != nil {
		return err
	}
	if e.Date == "" {
		return invalid("date", "is required")
	}
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if len(e.Friends) == 0 {
		return invalid("participants", "at least one name is required")
	}

	seen := make(map[string]struct{}, len(e.Friends))
	for _, f := range e.Friends {
		if strings.TrimSpace(f.Name) == "" {
			return invalid("participants", "blank name")
		}
		if _, dup := seen[f.Name]; dup {
			return invalid("participants", "%q listed twice", f.Name)
		}
		seen[f.Name] = struct{}{}
		if math.IsNaN(f.Share) || math.IsInf(f.Share, 0) || f.Share < 0 {
			return invalid("share", "%q has share %v", f.Name, f.Share)
		}
	}
	return nil
}
