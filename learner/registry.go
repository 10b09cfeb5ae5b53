// SPDX-License-Identifier: MIT

package learner

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/lvcat/moncat"
)

// Factory builds a parametric box from numeric arguments.
type Factory func(args []float64) (moncat.Arrow, error)

// Registry resolves box names, fixed ("COPY") or parametric ("Copy(2, 3)"),
// to arrows. It is an explicit value: callers own it and may extend it.
// Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	fixed     map[string]moncat.Arrow
	factories map[string]Factory
}

// NewRegistry returns a registry holding the learner vocabulary:
// SWAP, COPY, ADD, sigmoid and the families Copy, Sum, Mult, Bias, Discard.
func NewRegistry() *Registry {
	r := &Registry{
		fixed: map[string]moncat.Arrow{
			NameSwap:    Swap(),
			NameCopy:    Copy1(),
			NameAdd:     Add(),
			NameSigmoid: Sigmoid(),
		},
		factories: map[string]Factory{
			FamilyCopy: func(a []float64) (moncat.Arrow, error) {
				n, c, err := ints2(FamilyCopy, a)
				if err != nil {
					return nil, err
				}
				return Copy(n, c)
			},
			FamilySum: func(a []float64) (moncat.Arrow, error) {
				n, c, err := ints2(FamilySum, a)
				if err != nil {
					return nil, err
				}
				return Sum(n, c)
			},
			FamilyMult: func(a []float64) (moncat.Arrow, error) {
				if len(a) != 1 {
					return nil, arityErrorf(FamilyMult, 1, len(a))
				}
				return Mult(a[0]), nil
			},
			FamilyBias: func(a []float64) (moncat.Arrow, error) {
				if len(a) != 1 {
					return nil, arityErrorf(FamilyBias, 1, len(a))
				}
				return Bias(a[0]), nil
			},
			FamilyDiscard: func(a []float64) (moncat.Arrow, error) {
				if len(a) != 1 || a[0] != math.Trunc(a[0]) {
					return nil, arityErrorf(FamilyDiscard, 1, len(a))
				}
				return Discard(int(a[0]))
			},
		},
	}

	return r
}

// Register adds a fixed name. Returns ErrDuplicate when the name is taken.
func (r *Registry) Register(name string, a moncat.Arrow) error {
	if name == "" || a == nil {
		return fmt.Errorf("%w: empty registration", moncat.ErrType)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.fixed[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	r.fixed[name] = a

	return nil
}

// RegisterFactory adds a parametric family. Returns ErrDuplicate when taken.
func (r *Registry) RegisterFactory(family string, f Factory) error {
	if family == "" || f == nil {
		return fmt.Errorf("%w: empty registration", moncat.ErrType)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[family]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, family)
	}
	r.factories[family] = f

	return nil
}

// Lookup resolves a name. It has the shape of moncat.Lookup, so
// r.Lookup can be passed to moncat.Parse directly.
func (r *Registry) Lookup(name string) (moncat.Arrow, error) {
	r.mu.RLock()
	a, ok := r.fixed[name]
	r.mu.RUnlock()
	if ok {
		return a, nil
	}
	family, args, ok := splitCall(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", moncat.ErrUnknownBox, name)
	}
	r.mu.RLock()
	f, ok := r.factories[family]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", moncat.ErrUnknownBox, name)
	}
	nums := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: argument %d: %v", moncat.ErrParse, name, i, err)
		}
		nums[i] = v
	}

	return f(nums)
}

// Names lists the fixed names and families, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.fixed)+len(r.factories))
	for n := range r.fixed {
		out = append(out, n)
	}
	for f := range r.factories {
		out = append(out, f+"(...)")
	}
	sort.Strings(out)

	return out
}

// splitCall reads "Family(a, b)" into its family and trimmed arguments.
func splitCall(name string) (string, []string, bool) {
	open := strings.IndexByte(name, '(')
	if open <= 0 || !strings.HasSuffix(name, ")") {
		return "", nil, false
	}
	inner := strings.TrimSpace(name[open+1 : len(name)-1])
	if inner == "" {
		return name[:open], nil, true
	}
	args := strings.Split(inner, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	return name[:open], args, true
}

func ints2(family string, a []float64) (int, int, error) {
	if len(a) != 2 || a[0] != math.Trunc(a[0]) || a[1] != math.Trunc(a[1]) {
		return 0, 0, arityErrorf(family, 2, len(a))
	}

	return int(a[0]), int(a[1]), nil
}

func arityErrorf(family string, want, got int) error {
	return fmt.Errorf("%w: %s takes %d arguments, got %d", moncat.ErrType, family, want, got)
}
