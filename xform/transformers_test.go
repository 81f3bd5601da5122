package xform_test

import (
	"log/slog"
	"testing"

	"github.com/amp-labs/amp-tuple/xform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no whitespace", "hello", "hello"},
		{"both sides", "  hello  ", "hello"},
		{"tabs", "\t\thello\t\t", "hello"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := xform.TrimString(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestOneOf(t *testing.T) {
	t.Parallel()

	check := xform.OneOf("text", "json")

	value, err := check("json")
	require.NoError(t, err)
	assert.Equal(t, "json", value)

	_, err = check("xml")
	require.ErrorIs(t, err, xform.ErrInvalidChoice)
}

func TestBool(t *testing.T) {
	t.Parallel()

	value, err := xform.Bool("true")
	require.NoError(t, err)
	assert.True(t, value)

	_, err = xform.Bool("maybe")
	require.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			level, err := xform.SlogLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	_, err := xform.SlogLevel("INFO")
	require.ErrorIs(t, err, xform.ErrInvalidLogLevel)
}

func TestScalar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{"int", "42", 42},
		{"negative int", "-7", -7},
		{"float", "1.5", 1.5},
		{"bool", "true", true},
		{"null", "null", nil},
		{"tilde", "~", nil},
		{"plain string", "hello", "hello"},
		{"string with spaces", "hello world", "hello world"},
		{"quoted number", `"42"`, `"42"`},
		{"single quoted", "'true'", "'true'"},
		{"empty", "", ""},
		{"blank", "   ", "   "},
		{"comment marker", "a #b", "a #b"},
		{"comment only", "#b", "#b"},
		{"number with comment", "1 # one", "1 # one"},
		{"date", "2001-12-14", "2001-12-14"},
		{"timestamp", "2001-12-14T21:59:43Z", "2001-12-14T21:59:43Z"},
		{"padded string", "  pad  ", "  pad  "},
		{"explicit string tag", "!!str 5", "!!str 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			value, err := xform.Scalar(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestScalar_RejectsCollections(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"[1, 2]", "a: b", "- x"} {
		_, err := xform.Scalar(input)
		require.ErrorIs(t, err, xform.ErrNotScalar, input)
	}
}
