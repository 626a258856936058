// Package ledger holds the authoritative, ordered collection of expenses and
// persists it through a Gateway after every mutation.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/theirongolddev/splitlog/internal/model"
)

var (
	// ErrNotFound is returned when a mutation targets an unknown expense or
	// participant. State is left untouched and nothing is persisted.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when appending an expense whose id is taken.
	ErrDuplicate = errors.New("duplicate expense id")
	// ErrAmbiguous is returned by Resolve when a prefix matches several ids.
	ErrAmbiguous = errors.New("ambiguous expense id")
)

// Gateway loads and saves the full expense collection.
type Gateway interface {
	Load(ctx context.Context) ([]model.Expense, error)
	Save(ctx context.Context, expenses []model.Expense) error
}

// Repository owns the expense collection. Each mutation builds a new slice,
// saves it, and only then replaces the current one, so a failed save leaves
// the previous state in place.
type Repository struct {
	mu       sync.Mutex
	gw       Gateway
	expenses []model.Expense
}

// Open loads the persisted collection and returns a ready repository.
func Open(ctx context.Context, gw Gateway) (*Repository, error) {
	expenses, err := gw.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading expenses: %w", err)
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	slog.Debug("Ledger opened", "expenses", len(expenses))
	return &Repository{gw: gw, expenses: expenses}, nil
}

// Expenses returns a deep copy of the full history in insertion order.
func (r *Repository) Expenses() []model.Expense {
	r.mu.Lock()
	defer r.mu.Unlock()
	return model.CloneAll(r.expenses)
}

// Outstanding returns copies of the expenses that still have an unpaid share.
func (r *Repository) Outstanding() []model.Expense {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		if !e.Settled() {
			out = append(out, e.Clone())
		}
	}
	return out
}

// Len returns the number of expenses held.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.expenses)
}

// Get returns a copy of the expense with the given id.
func (r *Repository) Get(id string) (model.Expense, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		return r.expenses[i].Clone(), true
	}
	return model.Expense{}, false
}

// Resolve finds the single expense whose id equals or starts with prefix.
func (r *Repository) Resolve(prefix string) (model.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return model.Expense{}, fmt.Errorf("expense %q: %w", prefix, ErrNotFound)
	}
	if i := r.indexOf(prefix); i >= 0 {
		return r.expenses[i].Clone(), nil
	}

	match := -1
	for i, e := range r.expenses {
		if strings.HasPrefix(e.ID, prefix) {
			if match >= 0 {
				return model.Expense{}, fmt.Errorf("expense %q: %w", prefix, ErrAmbiguous)
			}
			match = i
		}
	}
	if match < 0 {
		return model.Expense{}, fmt.Errorf("expense %q: %w", prefix, ErrNotFound)
	}
	return r.expenses[match].Clone(), nil
}

// Append adds e to the end of the collection and persists it.
func (r *Repository) Append(ctx context.Context, e model.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(e.ID) >= 0 {
		return fmt.Errorf("expense %s: %w", e.ID, ErrDuplicate)
	}

	next := make([]model.Expense, len(r.expenses), len(r.expenses)+1)
	copy(next, r.expenses)
	next = append(next, e.Clone())

	if err := r.commit(ctx, next); err != nil {
		return fmt.Errorf("appending expense %s: %w", e.ID, err)
	}
	slog.Info("Expense added", "expense_id", e.ID, "title", e.Title, "participants", len(e.Friends))
	return nil
}

// Import appends every expense whose id is not already held, in order,
// and persists once. It returns how many were added.
func (r *Repository) Import(ctx context.Context, expenses []model.Expense) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(r.expenses)+len(expenses))
	for _, e := range r.expenses {
		seen[e.ID] = struct{}{}
	}

	next := make([]model.Expense, len(r.expenses), len(r.expenses)+len(expenses))
	copy(next, r.expenses)
	for _, e := range expenses {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		next = append(next, e.Clone())
	}

	added := len(next) - len(r.expenses)
	if added == 0 {
		return 0, nil
	}
	if err := r.commit(ctx, next); err != nil {
		return 0, fmt.Errorf("importing expenses: %w", err)
	}
	slog.Info("Expenses imported", "added", added, "skipped", len(expenses)-added)
	return added, nil
}

// TogglePaid flips the paid flag of the first share named name on the
// expense with the given id and returns a copy of the updated expense.
func (r *Repository) TogglePaid(ctx context.Context, id, name string) (model.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Expense{}, fmt.Errorf("expense %s: %w", id, ErrNotFound)
	}
	j := r.expenses[i].ShareIndex(name)
	if j < 0 {
		return model.Expense{}, fmt.Errorf("participant %q on expense %s: %w", name, id, ErrNotFound)
	}

	updated := r.expenses[i].Clone()
	updated.Friends[j].Paid = !updated.Friends[j].Paid

	next := make([]model.Expense, len(r.expenses))
	copy(next, r.expenses)
	next[i] = updated

	if err := r.commit(ctx, next); err != nil {
		return model.Expense{}, fmt.Errorf("toggling %q on expense %s: %w", name, id, err)
	}
	slog.Info("Share toggled", "expense_id", id, "participant", name, "paid", updated.Friends[j].Paid)
	return updated.Clone(), nil
}

// Delete removes the expense with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("expense %s: %w", id, ErrNotFound)
	}

	next := make([]model.Expense, 0, len(r.expenses)-1)
	next = append(next, r.expenses[:i]...)
	next = append(next, r.expenses[i+1:]...)

	if err := r.commit(ctx, next); err != nil {
		return fmt.Errorf("deleting expense %s: %w", id, err)
	}
	slog.Info("Expense deleted", "expense_id", id)
	return nil
}

// Clear removes every expense and writes the empty collection immediately,
// even when the collection is already empty.
func (r *Repository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.expenses)
	if err := r.commit(ctx, []model.Expense{}); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	slog.Info("History cleared", "removed", removed)
	return nil
}

// commit persists next and swaps it in. Callers hold r.mu.
func (r *Repository) commit(ctx context.Context, next []model.Expense) error {
	if err := r.gw.Save(ctx, next); err != nil {
		return err
	}
	r.expenses = next
	return nil
}

func (r *Repository) indexOf(id string) int {
	for i, e := range r.expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}
