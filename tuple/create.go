package tuple

import (
	"fmt"

	"github.com/amp-labs/amp-tuple/assert"
	"github.com/amp-labs/amp-tuple/errors"
)

// NewTuple8 creates an eight item tuple. The eighth item is wrapped in a
// Tuple1 and stored as Rest.
func NewTuple8[A, B, C, D, E, F, G, H any](
	item1 A, item2 B, item3 C, item4 D, item5 E, item6 F, item7 G, item8 H,
) Extended[A, B, C, D, E, F, G, Tuple1[H]] {
	return Extended[A, B, C, D, E, F, G, Tuple1[H]]{
		Item1: item1,
		Item2: item2,
		Item3: item3,
		Item4: item4,
		Item5: item5,
		Item6: item6,
		Item7: item7,
		Rest:  NewTuple1(item8),
	}
}

// Of builds the smallest tuple that holds the given values. Up to seven
// values produce a TupleN[any, ...]. More than seven produce a chain of
// Extended tuples, each holding seven values, ending in a tuple holding
// the remaining one to seven values.
//
// Of returns an error wrapping errors.ErrInvalidArgument if values is empty.
func Of(values ...any) (Tuple, error) { //nolint:ireturn
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: at least one value is required", errors.ErrInvalidArgument)
	}

	t := chain(values)

	assert.True(t.Len() == len(values), "tuple: built %d items from %d values", t.Len(), len(values))

	return t, nil
}

// chain expects at least one value.
func chain(v []any) Tuple { //nolint:ireturn,cyclop
	switch len(v) {
	case 1:
		return NewTuple1(v[0])
	case 2:
		return NewTuple2(v[0], v[1])
	case 3:
		return NewTuple3(v[0], v[1], v[2])
	case 4:
		return NewTuple4(v[0], v[1], v[2], v[3])
	case 5:
		return NewTuple5(v[0], v[1], v[2], v[3], v[4])
	case 6:
		return NewTuple6(v[0], v[1], v[2], v[3], v[4], v[5])
	case 7:
		return NewTuple7(v[0], v[1], v[2], v[3], v[4], v[5], v[6])
	default:
		return Extended[any, any, any, any, any, any, any, Tuple]{
			Item1: v[0],
			Item2: v[1],
			Item3: v[2],
			Item4: v[3],
			Item5: v[4],
			Item6: v[5],
			Item7: v[6],
			Rest:  chain(v[directItems:]),
		}
	}
}
