//nolint:ireturn
package tuple

import "strings"

func NewTuple1[A any](item1 A) Tuple1[A] {
	return Tuple1[A]{
		Item1: item1,
	}
}

// Tuple1 is a mutable singleton.
type Tuple1[A any] struct {
	Item1 A
}

func (t Tuple1[A]) Len() int {
	return 1
}

// Values returns the only item.
func (t Tuple1[A]) Values() A {
	return t.Item1
}

func (t Tuple1[A]) Items() []any {
	return []any{t.Item1}
}

func (t Tuple1[A]) String() string {
	return render(t)
}

func (t Tuple1[A]) writeTail(b *strings.Builder) {
	writeClosed(b, t.Item1)
}

func NewTuple2[A, B any](item1 A, item2 B) Tuple2[A, B] {
	return Tuple2[A, B]{
		Item1: item1,
		Item2: item2,
	}
}

// Tuple2 is a mutable pair of values.
type Tuple2[A, B any] struct {
	Item1 A
	Item2 B
}

func (t Tuple2[A, B]) Len() int {
	return 2
}

// Values returns the items as multiple return values.
func (t Tuple2[A, B]) Values() (A, B) {
	return t.Item1, t.Item2
}

func (t Tuple2[A, B]) Items() []any {
	return []any{t.Item1, t.Item2}
}

func (t Tuple2[A, B]) String() string {
	return render(t)
}

func (t Tuple2[A, B]) writeTail(b *strings.Builder) {
	writeClosed(b, t.Item1, t.Item2)
}

func NewTuple3[A, B, C any](item1 A, item2 B, item3 C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{
		Item1: item1,
		Item2: item2,
		Item3: item3,
	}
}

// Tuple3 is a mutable triple of values.
type Tuple3[A, B, C any] struct {
	Item1 A
	Item2 B
	Item3 C
}

func (t Tuple3[A, B, C]) Len() int {
	return 3
}

func (t Tuple3[A, B, C]) Values() (A, B, C) {
	return t.Item1, t.Item2, t.Item3
}

func (t Tuple3[A, B, C]) Items() []any {
	return []any{t.Item1, t.Item2, t.Item3}
}

func (t Tuple3[A, B, C]) String() string {
	return render(t)
}

func (t Tuple3[A, B, C]) writeTail(b *strings.Builder) {
	writeClosed(b, t.Item1, t.Item2, t.Item3)
}

func NewTuple4[A, B, C, D any](item1 A, item2 B, item3 C, item4 D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{
		Item1: item1,
		Item2: item2,
		Item3: item3,
		Item4: item4,
	}
}

// Tuple4 is a mutable quadruple of values.
type Tuple4[A, B, C, D any] struct {
	Item1 A
	Item2 B
	Item3 C
	Item4 D
}

func (t Tuple4[A, B, C, D]) Len() int {
	return 4
}

func (t Tuple4[A, B, C, D]) Values() (A, B, C, D) {
	return t.Item1, t.Item2, t.Item3, t.Item4
}

func (t Tuple4[A, B, C, D]) Items() []any {
	return []any{t.Item1, t.Item2, t.Item3, t.Item4}
}

func (t Tuple4[A, B, C, D]) String() string {
	return render(t)
}

func (t Tuple4[A, B, C, D]) writeTail(b *strings.Builder) {
	writeClosed(b, t.Item1, t.Item2, t.Item3, t.Item4)
}

func NewTuple5[A, B, C, D, E any](item1 A, item2 B, item3 C, item4 D, item5 E) Tuple5[A, B, C, D, E] {
	return Tuple5[A, B, C, D, E]{
		Item1: item1,
		Item2: item2,
		Item3: item3,
		Item4: item4,
		Item5: item5,
	}
}

// Tuple5 is a mutable quintuple of values.
type Tuple5[A, B, C, D, E any] struct {
	Item1 A
	Item2 B
	Item3 C
	Item4 D
	Item5 E
}

func (t Tuple5[A, B, C, D, E]) Len() int {
	return 5
}

func (t Tuple5[A, B, C, D, E]) Values() (A, B, C, D, E) {
	return t.Item1, t.Item2, t.Item3, t.Item4, t.Item5
}

func (t Tuple5[A, B, C, D, E]) Items() []any {
	return []any{t.Item1, t.Item2, t.Item3, t.Item4, t.Item5}
}

func (t Tuple5[A, B, C, D, E]) String() string {
	return render(t)
}

func (t Tuple5[A, B, C, D, E]) writeTail(b *strings.Builder) {
	writeClosed(b, t.Item1, t.Item2, t.Item3, t.Item4, t.Item5)
}

func NewTuple6[A, B, C, D, E, F any](item1 A, item2 B, item3 C, item4 D, item5 E, item6 F) Tuple6[A, B, C, D, E, F] {
	return Tuple6[A, B, C, D, E, F]{
		Item1: item1,
		Item2: item2,
		Item3: item3,
		Item4: item4,
		Item5: item5,
		Item6: item6,
	}
}

// Tuple6 is a mutable sextuple of values.
type Tuple6[A, B, C, D, E, F any] struct {
	Item1 A
	Item2 B
	Item3 C
	Item4 D
	Item5 E
	Item6 F
}

func (t Tuple6[A, B, C, D, E, F]) Len() int {
	return 6
}

func (t Tuple6[A, B, C, D, E, F]) Values() (A, B, C, D, E, F) {
	return t.Item1, t.Item2, t.Item3, t.Item4, t.Item5, t.Item6
}

func (t Tuple6[A, B, C, D, E, F]) Items() []any {
	return []any{t.Item1, t.Item2, t.Item3, t.Item4, t.Item5, t.Item6}
}

func (t Tuple6[A, B, C, D, E, F]) String() string {
	return render(t)
}

func (t Tuple6[A, B, C, D, E, F]) writeTail(b *strings.Builder) {
	writeClosed(b, t.Item1, t.Item2, t.Item3, t.Item4, t.Item5, t.Item6)
}

func NewTuple7[A, B, C, D, E, F, G any](item1 A, item2 B, item3 C, item4 D, item5 E, item6 F, item7 G) Tuple7[A, B, C, D, E, F, G] {
	return Tuple7[A, B, C, D, E, F, G]{
		Item1: item1,
		Item2: item2,
		Item3: item3,
		Item4: item4,
		Item5: item5,
		Item6: item6,
		Item7: item7,
	}
}

// Tuple7 is a mutable septuple of values.
type Tuple7[A, B, C, D, E, F, G any] struct {
	Item1 A
	Item2 B
	Item3 C
	Item4 D
	Item5 E
	Item6 F
	Item7 G
}

func (t Tuple7[A, B, C, D, E, F, G]) Len() int {
	return 7
}

func (t Tuple7[A, B, C, D, E, F, G]) Values() (A, B, C, D, E, F, G) {
	return t.Item1, t.Item2, t.Item3, t.Item4, t.Item5, t.Item6, t.Item7
}

func (t Tuple7[A, B, C, D, E, F, G]) Items() []any {
	return []any{t.Item1, t.Item2, t.Item3, t.Item4, t.Item5, t.Item6, t.Item7}
}

func (t Tuple7[A, B, C, D, E, F, G]) String() string {
	return render(t)
}

func (t Tuple7[A, B, C, D, E, F, G]) writeTail(b *strings.Builder) {
	writeClosed(b, t.Item1, t.Item2, t.Item3, t.Item4, t.Item5, t.Item6, t.Item7)
}
