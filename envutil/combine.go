package envutil

import (
	"errors"
	"strings"

	"github.com/amp-labs/amp-tuple/tuple"
)

type readerState interface {
	state() (key string, present bool, err error)
}

// combine merges reader states into a single Reader whose key joins the
// individual keys with "+". Any error wins over a missing value, and build is
// only called when every reader has a value.
func combine[T any](build func() T, readers ...readerState) Reader[T] {
	keys := make([]string, 0, len(readers))
	errs := make([]error, 0, len(readers))
	present := true

	for _, rdr := range readers {
		key, ok, err := rdr.state()

		keys = append(keys, key)
		present = present && ok

		if err != nil {
			errs = append(errs, err)
		}
	}

	key := strings.Join(keys, "+")

	if len(errs) > 0 {
		return Reader[T]{
			key: key,
			err: errors.Join(errs...),
		}
	}

	if !present {
		return Reader[T]{key: key}
	}

	return Reader[T]{
		key:     key,
		present: true,
		value:   build(),
	}
}

// Combine2 combines 2 Readers into a single Reader containing a Tuple2.
// All-or-nothing: if any Reader has an error or is missing, the result will too.
func Combine2[A any, B any](
	first Reader[A],
	second Reader[B],
) Reader[tuple.Tuple2[A, B]] {
	return combine(func() tuple.Tuple2[A, B] {
		return tuple.NewTuple2(first.value, second.value)
	}, first, second)
}

// Combine3 is Combine2 for 3 Readers.
func Combine3[A any, B any, C any](
	first Reader[A],
	second Reader[B],
	third Reader[C],
) Reader[tuple.Tuple3[A, B, C]] {
	return combine(func() tuple.Tuple3[A, B, C] {
		return tuple.NewTuple3(first.value, second.value, third.value)
	}, first, second, third)
}

func Combine4[A any, B any, C any, D any](
	first Reader[A],
	second Reader[B],
	third Reader[C],
	fourth Reader[D],
) Reader[tuple.Tuple4[A, B, C, D]] {
	return combine(func() tuple.Tuple4[A, B, C, D] {
		return tuple.NewTuple4(first.value, second.value, third.value, fourth.value)
	}, first, second, third, fourth)
}

// Combine5 is Combine2 for 5 Readers.
func Combine5[A any, B any, C any, D any, E any](
	first Reader[A],
	second Reader[B],
	third Reader[C],
	fourth Reader[D],
	fifth Reader[E],
) Reader[tuple.Tuple5[A, B, C, D, E]] {
	return combine(func() tuple.Tuple5[A, B, C, D, E] {
		return tuple.NewTuple5(first.value, second.value, third.value, fourth.value, fifth.value)
	}, first, second, third, fourth, fifth)
}

func Combine6[A any, B any, C any, D any, E any, F any](
	first Reader[A],
	second Reader[B],
	third Reader[C],
	fourth Reader[D],
	fifth Reader[E],
	sixth Reader[F],
) Reader[tuple.Tuple6[A, B, C, D, E, F]] {
	return combine(func() tuple.Tuple6[A, B, C, D, E, F] {
		return tuple.NewTuple6(first.value, second.value, third.value, fourth.value, fifth.value, sixth.value)
	}, first, second, third, fourth, fifth, sixth)
}

func Combine7[A any, B any, C any, D any, E any, F any, G any](
	first Reader[A],
	second Reader[B],
	third Reader[C],
	fourth Reader[D],
	fifth Reader[E],
	sixth Reader[F],
	seventh Reader[G],
) Reader[tuple.Tuple7[A, B, C, D, E, F, G]] {
	return combine(func() tuple.Tuple7[A, B, C, D, E, F, G] {
		return tuple.NewTuple7(first.value, second.value, third.value, fourth.value, fifth.value, sixth.value, seventh.value)
	}, first, second, third, fourth, fifth, sixth, seventh)
}

// Combine8 combines 8 Readers. The eighth value is held in the Rest of an
// extended tuple, as built by tuple.NewTuple8.
func Combine8[A any, B any, C any, D any, E any, F any, G any, H any](
	first Reader[A],
	second Reader[B],
	third Reader[C],
	fourth Reader[D],
	fifth Reader[E],
	sixth Reader[F],
	seventh Reader[G],
	eighth Reader[H],
) Reader[tuple.Extended[A, B, C, D, E, F, G, tuple.Tuple1[H]]] {
	return combine(func() tuple.Extended[A, B, C, D, E, F, G, tuple.Tuple1[H]] {
		return tuple.NewTuple8(first.value, second.value, third.value, fourth.value, fifth.value, sixth.value, seventh.value, eighth.value)
	}, first, second, third, fourth, fifth, sixth, seventh, eighth)
}
