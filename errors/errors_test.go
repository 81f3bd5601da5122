package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: rest must be a tuple", ErrInvalidArgument)

	require.ErrorIs(t, wrapped, ErrInvalidArgument)
	require.NotErrorIs(t, wrapped, ErrWrongType)
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Len(t, c.errors, 2)
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Empty(t, c.errors)
	})
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		require.NoError(t, c.GetError())
	})

	t.Run("returns the single error unchanged", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := errors.New("error 1") //nolint:err113

		c.Add(err1)

		assert.Equal(t, err1, c.GetError())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		c.Add(fmt.Errorf("%w: first", ErrInvalidArgument))
		c.Add(fmt.Errorf("%w: second", ErrWrongType))

		err := c.GetError()
		require.ErrorIs(t, err, ErrInvalidArgument)
		require.ErrorIs(t, err, ErrWrongType)
		assert.Contains(t, err.Error(), "first")
		assert.Contains(t, err.Error(), "second")
	})
}
