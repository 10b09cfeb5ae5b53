// SPDX-License-Identifier: MIT

package moncat

import (
	"strconv"
	"strings"
)

// Ob is a generator label: the name carried by a single wire.
type Ob string

// proOb labels every wire of a PRO type.
const proOb Ob = "1"

// Ty is an immutable, ordered sequence of generator labels.
// The zero value is the empty type, the unit of Tensor.
//
// Two types are equal iff their label sequences are equal; the width of a
// type is its length. A PRO type is one whose wires all carry the same
// generator, so it is determined by its width alone.
type Ty struct {
	objs []Ob // never mutated after construction
}

// NewTy builds a type from generator labels, left to right.
// Complexity: O(len(labels)).
func NewTy(labels ...string) Ty {
	if len(labels) == 0 {
		return Ty{}
	}
	objs := make([]Ob, len(labels))
	for i, l := range labels {
		objs[i] = Ob(l)
	}

	return Ty{objs: objs}
}

// TyOf builds a type from generator values.
func TyOf(obs ...Ob) Ty {
	if len(obs) == 0 {
		return Ty{}
	}
	objs := make([]Ob, len(obs))
	copy(objs, obs)

	return Ty{objs: objs}
}

// NewPRO returns the PRO type of width n.
// Returns ErrType when n is negative.
// Complexity: O(n).
func NewPRO(n int) (Ty, error) {
	if n < 0 {
		return Ty{}, typeErrorf("negative PRO width %d", n)
	}
	if n == 0 {
		return Ty{}, nil
	}
	objs := make([]Ob, n)
	for i := range objs {
		objs[i] = proOb
	}

	return Ty{objs: objs}, nil
}

// PRO is NewPRO for widths known to be valid. It panics on negative n,
// which is a programmer error.
func PRO(n int) Ty {
	t, err := NewPRO(n)
	if err != nil {
		panic(err)
	}

	return t
}

// Width returns the number of wires.
func (t Ty) Width() int { return len(t.objs) }

// Objects returns a copy of the labels.
func (t Ty) Objects() []Ob {
	out := make([]Ob, len(t.objs))
	copy(out, t.objs)

	return out
}

// At returns the label of wire i. It panics when i is out of range,
// like slice indexing.
func (t Ty) At(i int) Ob { return t.objs[i] }

// Slice returns wires [i, j) as a new type sharing the (immutable) storage.
// It panics on invalid bounds, like slice expressions.
func (t Ty) Slice(i, j int) Ty {
	if i == j {
		return Ty{}
	}

	return Ty{objs: t.objs[i:j:j]}
}

// Tensor concatenates t with others. Tensor is associative and the empty
// type is its unit; widths add up.
// Complexity: O(total width).
func (t Ty) Tensor(others ...Ty) Ty {
	n := len(t.objs)
	for _, o := range others {
		n += len(o.objs)
	}
	if n == len(t.objs) {
		return t
	}
	objs := make([]Ob, 0, n)
	objs = append(objs, t.objs...)
	for _, o := range others {
		objs = append(objs, o.objs...)
	}

	return Ty{objs: objs}
}

// Equal reports whether both types carry the same label sequence.
func (t Ty) Equal(o Ty) bool {
	if len(t.objs) != len(o.objs) {
		return false
	}
	for i := range t.objs {
		if t.objs[i] != o.objs[i] {
			return false
		}
	}

	return true
}

// IsPRO reports whether every wire carries the PRO generator.
// The empty type is PRO(0).
func (t Ty) IsPRO() bool {
	for _, o := range t.objs {
		if o != proOb {
			return false
		}
	}

	return true
}

// PROWidth recovers n from PRO(n). Returns ErrType for labelled types.
func (t Ty) PROWidth() (int, error) {
	if !t.IsPRO() {
		return 0, typeErrorf("%s is not a PRO type", t)
	}

	return len(t.objs), nil
}

// String renders PRO types as "PRO(n)", labelled types as "x @ y" and the
// empty type as "Ty()".
func (t Ty) String() string {
	if len(t.objs) == 0 {
		return "Ty()"
	}
	if t.IsPRO() {
		return "PRO(" + strconv.Itoa(len(t.objs)) + ")"
	}

	return t.join(" @ ")
}

// idArg is the argument rendered inside Id(...): a bare width for PRO types.
func (t Ty) idArg() string {
	if t.IsPRO() {
		return strconv.Itoa(len(t.objs))
	}

	return t.join(" @ ")
}

// key is an injective encoding used by Box.Key and Diagram.Key.
func (t Ty) key() string {
	if t.IsPRO() {
		return strconv.Itoa(len(t.objs))
	}
	parts := make([]string, len(t.objs))
	for i, o := range t.objs {
		parts[i] = strconv.Quote(string(o))
	}

	return "[" + strings.Join(parts, ",") + "]"
}

func (t Ty) join(sep string) string {
	parts := make([]string, len(t.objs))
	for i, o := range t.objs {
		parts[i] = string(o)
	}

	return strings.Join(parts, sep)
}
