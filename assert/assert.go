// Package assert provides type assertion utilities with error handling,
// plus invariant checks that can be compiled out.
package assert

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-tuple/errors"
)

// Type asserts that the given value is of the expected type T.
// T may be an interface type, in which case val must implement it.
// If the assertion fails, it returns an error wrapping errors.ErrWrongType.
//
//nolint:ireturn
func Type[T any](val any) (T, error) {
	of, ok := val.(T)
	if !ok {
		return of, fmt.Errorf("%w: expected type %v, but received %T", errors.ErrWrongType, reflect.TypeFor[T](), val)
	}

	return of, nil
}

func failure(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
