// Package xform contains small value transformers of the form
// func(A) (B, error), used to parse configuration and command-line values.
package xform

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ToLower converts a string to lowercase.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// OneOf returns a transformer that validates a value is one of the allowed choices.
// Returns ErrInvalidChoice if the value doesn't match any of the choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v", ErrInvalidChoice, value)
	}
}

// Bool parses a string as a boolean value.
// Accepts: "1", "t", "T", "true", "TRUE", "True", "0", "f", "F", "false", "FALSE", "False".
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// SlogLevel parses a string as a slog.Level.
// Accepts: "debug", "info", "warn", "error" (case-sensitive).
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}

// Scalar decodes a string as a single YAML scalar. Plain integers become int,
// decimals become float64, true/false become bool, and null or ~ become nil.
// Anything else is returned exactly as given: quoting, surrounding spaces,
// comment markers and date-like text are kept. Sequences and mappings return
// ErrNotScalar.
func Scalar(value string) (any, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal([]byte(value), &doc); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNotScalar, value, err)
	}

	// Blank or comment-only input has no document content.
	if len(doc.Content) == 0 {
		return value, nil
	}

	node := doc.Content[0]
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("%w: %q", ErrNotScalar, value)
	}

	// Only keep decoded values whose text is exactly the trimmed input, so a
	// trailing comment can't be silently dropped.
	if !typedScalar(node.ShortTag()) || hasComment(&doc) || hasComment(node) ||
		node.Value != strings.TrimSpace(value) {
		return value, nil
	}

	var out any

	if err := node.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrNotScalar, value, err)
	}

	return out, nil
}

func typedScalar(tag string) bool {
	switch tag {
	case "!!int", "!!float", "!!bool", "!!null":
		return true
	default:
		return false
	}
}

func hasComment(node *yaml.Node) bool {
	return node.HeadComment != "" || node.LineComment != "" || node.FootComment != ""
}
