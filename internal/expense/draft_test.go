package expense

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	v, err := ParseAmount(" 42.50 ")
	require.NoError(t, err)
	assert.Equal(t, 42.5, v)

	for _, in := range []string{"", "abc", "0", "-3", "NaN", "Inf"} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrValidation, "input %q", in)
	}
}

func TestFromDraft(t *testing.T) {
	f := fixedFactory(RemainderNone)

	e, err := f.FromDraft(Draft{
		Title:        "Groceries",
		Amount:       "90",
		Participants: "A, B, C",
		Category:     "Home",
	})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", e.Title)
	assert.Equal(t, 90.0, e.Amount)
	assert.Equal(t, "Home", e.Category)
	assert.Equal(t, "2025-07-15", e.Date)
	require.Len(t, e.Friends, 3)
	assert.Equal(t, 30.0, e.Friends[2].Share)

	_, err = f.FromDraft(Draft{Title: "x", Amount: "ten", Participants: "A"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "amount", verr.Field)
}
