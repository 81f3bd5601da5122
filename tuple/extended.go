package tuple

import (
	"fmt"
	"strings"

	"github.com/amp-labs/amp-tuple/assert"
	"github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/utils"
)

// Extended is a tuple of eight or more items: seven direct items plus Rest,
// which holds the remaining items as another tuple. Rest may itself be an
// Extended tuple, so chains have no length limit.
//
// R is unconstrained so that Rest can be a concrete tuple type such as
// Tuple1[int]. NewExtended checks at runtime that the value is a tuple.
// If R is an interface type and Rest is later reassigned to something that
// isn't a tuple, Rest is treated as a plain eighth item.
type Extended[A, B, C, D, E, F, G, R any] struct {
	Item1 A
	Item2 B
	Item3 C
	Item4 D
	Item5 E
	Item6 F
	Item7 G
	Rest  R
}

// NewExtended creates an Extended tuple. It returns an error wrapping
// errors.ErrInvalidArgument if rest is not a tuple from this package
// (or is a nil pointer to one).
func NewExtended[A, B, C, D, E, F, G, R any](
	item1 A, item2 B, item3 C, item4 D, item5 E, item6 F, item7 G, rest R,
) (Extended[A, B, C, D, E, F, G, R], error) {
	if err := checkRest(rest); err != nil {
		return Extended[A, B, C, D, E, F, G, R]{}, err
	}

	return Extended[A, B, C, D, E, F, G, R]{
		Item1: item1,
		Item2: item2,
		Item3: item3,
		Item4: item4,
		Item5: item5,
		Item6: item6,
		Item7: item7,
		Rest:  rest,
	}, nil
}

// MustExtended is like NewExtended but panics if rest is not a tuple.
func MustExtended[A, B, C, D, E, F, G, R any](
	item1 A, item2 B, item3 C, item4 D, item5 E, item6 F, item7 G, rest R,
) Extended[A, B, C, D, E, F, G, R] {
	ext, err := NewExtended(item1, item2, item3, item4, item5, item6, item7, rest)
	if err != nil {
		panic(err)
	}

	return ext
}

func checkRest(rest any) error {
	if utils.IsNilish(rest) {
		return fmt.Errorf("%w: rest must be a tuple, got nil %T", errors.ErrInvalidArgument, rest)
	}

	if _, err := assert.Type[Tuple](rest); err != nil {
		return fmt.Errorf("%w: rest must be a tuple: %w", errors.ErrInvalidArgument, err)
	}

	return nil
}

func (t Extended[A, B, C, D, E, F, G, R]) direct() []any {
	return []any{t.Item1, t.Item2, t.Item3, t.Item4, t.Item5, t.Item6, t.Item7}
}

func (t Extended[A, B, C, D, E, F, G, R]) Len() int {
	rest, ok := asTuple(t.Rest)
	if !ok {
		return directItems + 1
	}

	return directItems + rest.Len()
}

func (t Extended[A, B, C, D, E, F, G, R]) Items() []any {
	items := t.direct()

	rest, ok := asTuple(t.Rest)
	if !ok {
		return append(items, t.Rest)
	}

	return append(items, rest.Items()...)
}

func (t Extended[A, B, C, D, E, F, G, R]) String() string {
	return render(t)
}

func (t Extended[A, B, C, D, E, F, G, R]) writeTail(b *strings.Builder) {
	writeItems(b, t.direct())
	b.WriteString(", ")

	rest, ok := asTuple(t.Rest)
	if !ok {
		writeItem(b, t.Rest)
		b.WriteByte(')')

		return
	}

	// The rest's tail supplies the closing parenthesis for the whole chain.
	rest.writeTail(b)
}
