// Package envutil reads typed configuration values from environment variables.
package envutil

import (
	"log/slog"
	"os"

	"github.com/amp-labs/amp-tuple/tuple"
	"github.com/amp-labs/amp-tuple/xform"
)

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// NewReader returns a Reader for the given raw data, for callers who want
// Reader semantics for values that don't come from the environment.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		err:     err,
		value:   value,
	}
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(Map(get(key), xform.TrimString), xform.Bool), opts)
}

// SlogLevel returns a Reader for the given environment variable key.
// The value is trimmed and lowercased before parsing.
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(Map(Map(get(key), xform.TrimString), xform.ToLower), xform.SlogLevel)

	return apply(rdr, opts)
}

// String2 returns a Reader for the given environment variable keys.
// Note that this is all or nothing, so if one of the keys is missing,
// the entire Reader will be missing.
func String2(
	key1 string,
	key2 string,
	opts ...Option[string],
) Reader[tuple.Tuple2[string, string]] {
	return Combine2(
		String(key1, opts...),
		String(key2, opts...))
}

// String3 is String2 for three keys.
func String3(
	key1 string,
	key2 string,
	key3 string,
	opts ...Option[string],
) Reader[tuple.Tuple3[string, string, string]] {
	return Combine3(
		String(key1, opts...),
		String(key2, opts...),
		String(key3, opts...))
}
