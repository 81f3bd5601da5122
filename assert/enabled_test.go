//go:build !assertions_disabled

package assert_test

import (
	"testing"

	"github.com/amp-labs/amp-tuple/assert"
	"github.com/stretchr/testify/require"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	t.Run("does not panic when value is true", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() {
			assert.True(true)
		})
	})

	t.Run("panics with default message when value is false", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "assertion failed", func() {
			assert.True(false)
		})
	})

	t.Run("panics with formatted message when value is false", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "expected 42 but got 0", func() {
			assert.True(false, "expected %d but got %d", 42, 0)
		})
	})

	t.Run("panics with args when first arg is not string", func(t *testing.T) {
		t.Parallel()

		require.PanicsWithValue(t, "assertion failed: [42 test]", func() {
			assert.True(false, 42, "test")
		})
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		assert.False(false)
	})

	require.PanicsWithValue(t, "expected false", func() {
		assert.False(true, "expected %s", "false")
	})
}
