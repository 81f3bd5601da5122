package assert_test

import (
	"fmt"
	"testing"

	"github.com/amp-labs/amp-tuple/assert"
	commonerrors "github.com/amp-labs/amp-tuple/errors"
	"github.com/stretchr/testify/require"
)

func TestType_Success(t *testing.T) {
	t.Parallel()

	t.Run("concrete type", func(t *testing.T) {
		t.Parallel()

		result, err := assert.Type[string]("hello")
		require.NoError(t, err)
		require.Equal(t, "hello", result)
	})

	t.Run("slice type", func(t *testing.T) {
		t.Parallel()

		result, err := assert.Type[[]int]([]int{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 3}, result)
	})

	t.Run("value not implementing interface", func(t *testing.T) {
		t.Parallel()

		result, err := assert.Type[fmt.Stringer](commonerrors.ErrWrongType)
		require.Error(t, err)
		require.Nil(t, result)
	})

	t.Run("value implementing interface", func(t *testing.T) {
		t.Parallel()

		result, err := assert.Type[error](commonerrors.ErrWrongType)
		require.NoError(t, err)
		require.ErrorIs(t, result, commonerrors.ErrWrongType)
	})
}

func TestType_Failure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		check         func() error
		expectedError string
	}{
		{
			name: "string to int",
			check: func() error {
				_, err := assert.Type[int]("hello")

				return err
			},
			expectedError: "expected type int, but received string",
		},
		{
			name: "slice to map",
			check: func() error {
				_, err := assert.Type[map[string]int]([]int{1, 2, 3})

				return err
			},
			expectedError: "expected type map[string]int, but received []int",
		},
		{
			name: "nil to string",
			check: func() error {
				_, err := assert.Type[string](nil)

				return err
			},
			expectedError: "expected type string, but received <nil>",
		},
		{
			name: "int to interface",
			check: func() error {
				_, err := assert.Type[fmt.Stringer](42)

				return err
			},
			expectedError: "expected type fmt.Stringer, but received int",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := testCase.check()

			require.Error(t, err)
			require.ErrorIs(t, err, commonerrors.ErrWrongType)
			require.Contains(t, err.Error(), testCase.expectedError)
		})
	}
}

func TestType_ZeroValue(t *testing.T) {
	t.Parallel()

	result, err := assert.Type[int]("not an int")
	require.Error(t, err)
	require.Zero(t, result)
}
