package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineActions(t *testing.T) {
	creators, err := ActionCreatorsFromTypes("ACTION_ONE", "ACTION_TWO")
	require.NoError(t, err)
	one, two := creators["actionOne"], creators["actionTwo"]

	t.Run("rejects arguments that are not types", func(t *testing.T) {
		_, err := CombineActions(1, "ACTION_TWO")
		assert.ErrorIs(t, err, ErrInvalidType)

		_, err = CombineActions("ACTION_ONE", func() {}, nil)
		assert.ErrorIs(t, err, ErrInvalidType)
	})

	t.Run("rejects an empty list", func(t *testing.T) {
		_, err := CombineActions()
		assert.ErrorIs(t, err, ErrInvalidBatchShape)
	})

	t.Run("joins strings with the delimiter", func(t *testing.T) {
		c, err := CombineActions("ACTION_ONE", "ACTION_TWO")
		require.NoError(t, err)
		assert.Equal(t, "ACTION_ONE"+Delimiter+"ACTION_TWO", c.String())
	})

	t.Run("accepts a mix of creators and strings", func(t *testing.T) {
		c, err := CombineActions(one, two, "ACTION_THREE")
		require.NoError(t, err)
		assert.Equal(t, one.String()+Delimiter+two.String()+Delimiter+"ACTION_THREE", c.ResolveType())
		assert.Equal(t, []string{"ACTION_ONE", "ACTION_TWO", "ACTION_THREE"}, c.Types())
	})

	t.Run("nests combined types", func(t *testing.T) {
		inner, err := CombineActions(one, two)
		require.NoError(t, err)
		outer, err := CombineActions(inner, PlainType("ACTION_THREE"))
		require.NoError(t, err)
		assert.Equal(t, []string{"ACTION_ONE", "ACTION_TWO", "ACTION_THREE"}, outer.Types())
	})

	t.Run("single type", func(t *testing.T) {
		c, err := CombineActions("ONLY")
		require.NoError(t, err)
		assert.Equal(t, "ONLY", c.String())
	})
}
