// Package store persists the expense collection as a single JSON blob in a
// key-value backend (SQLite, Redis, or memory).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/theirongolddev/splitlog/internal/model"
)

// ExpensesKey is the fixed key the expense collection is stored under.
const ExpensesKey = "expenses"

// ErrStorage wraps every backend read/write failure.
var ErrStorage = errors.New("storage error")

// KV is an opaque blob store with get/set-by-key semantics.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Gateway loads and saves the full expense collection under ExpensesKey.
type Gateway struct {
	kv  KV
	key string
}

// NewGateway returns a gateway over kv.
func NewGateway(kv KV) *Gateway {
	return &Gateway{kv: kv, key: ExpensesKey}
}

// Load returns the persisted collection. A missing key or an undecodable
// blob yields an empty collection; the latter is logged. Backend failures
// are returned so they are never mistaken for an empty ledger.
func (g *Gateway) Load(ctx context.Context) ([]model.Expense, error) {
	data, ok, err := g.kv.Get(ctx, g.key)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", ErrStorage, g.key, err)
	}
	if !ok || len(data) == 0 {
		return []model.Expense{}, nil
	}

	var expenses []model.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		slog.Warn("Stored expenses are unreadable, starting empty",
			"key", g.key,
			"bytes", len(data),
			"error", err,
		)
		return []model.Expense{}, nil
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}
	return expenses, nil
}

// Save overwrites the blob with expenses. A nil slice is stored as [].
func (g *Gateway) Save(ctx context.Context, expenses []model.Expense) error {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	data, err := json.Marshal(expenses)
	if err != nil {
		return fmt.Errorf("%w: encoding expenses: %v", ErrStorage, err)
	}
	if err := g.kv.Set(ctx, g.key, data); err != nil {
		return fmt.Errorf("%w: writing %q: %v", ErrStorage, g.key, err)
	}
	slog.Debug("Expenses saved", "key", g.key, "count", len(expenses), "bytes", len(data))
	return nil
}

// timestamped is implemented by backends that record write times.
type timestamped interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, error)
}

// LastSaved reports when the collection was last written. ok is false when
// the backend does not track write times or nothing has been saved yet.
func (g *Gateway) LastSaved(ctx context.Context) (at time.Time, ok bool, err error) {
	ts, can := g.kv.(timestamped)
	if !can {
		return time.Time{}, false, nil
	}
	at, err = ts.UpdatedAt(ctx, g.key)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: reading write time of %q: %v", ErrStorage, g.key, err)
	}
	return at, !at.IsZero(), nil
}

// Close releases the underlying backend.
func (g *Gateway) Close() error {
	return g.kv.Close()
}
