// Package tuple provides mutable, fixed-arity tuple types.
//
// Tuple1 through Tuple7 hold one to seven values in exported ItemN fields.
// Extended holds seven values plus a Rest field which must itself be a tuple,
// so a chain of Extended values can represent any number of items. A chain
// renders as a single flat list: (1, 2, 3, 4, 5, 6, 7, 8, 9).
//
// Tuples are not internally synchronized. Callers mutating the same tuple
// from multiple goroutines must provide their own locking.
package tuple

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-tuple/utils"
)

// directItems is the number of values an Extended tuple holds before Rest.
const directItems = 7

// Tuple is implemented by every tuple type in this package. The unexported
// method keeps outside types from satisfying it, which is what lets
// NewExtended reject a Rest value that isn't one of ours.
type Tuple interface {
	fmt.Stringer

	// Len returns the number of items, counting through any Rest chain.
	Len() int

	// Items returns every item in order, flattening any Rest chain.
	Items() []any

	// writeTail renders the tuple without its opening parenthesis.
	writeTail(b *strings.Builder)
}

// Tail returns the rendering of t without the leading "(".
// This is the form used when t is embedded as the Rest of an Extended tuple.
func Tail(t Tuple) string {
	var b strings.Builder

	t.writeTail(&b)

	return b.String()
}

func render(t Tuple) string {
	var b strings.Builder

	b.WriteByte('(')
	t.writeTail(&b)

	return b.String()
}

// asTuple reports whether v can serve as the Rest of an Extended tuple.
func asTuple(v any) (Tuple, bool) {
	if utils.IsNilish(v) {
		return nil, false
	}

	t, ok := v.(Tuple)

	return t, ok
}

// writeItem renders a single value. Absent values (nil, or a nil
// pointer, map, slice, channel or func) render as the empty string.
func writeItem(b *strings.Builder, item any) {
	if utils.IsNilish(item) {
		return
	}

	_, _ = fmt.Fprint(b, item)
}

func writeItems(b *strings.Builder, items []any) {
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}

		writeItem(b, item)
	}
}

// writeClosed is the tail rendering shared by the fixed-arity tuples.
func writeClosed(b *strings.Builder, items ...any) {
	writeItems(b, items)
	b.WriteByte(')')
}
