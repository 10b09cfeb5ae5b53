// SPDX-License-Identifier: MIT

package opengraph

import (
	"fmt"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/moncat"
)

// Resolver turns a box vertex back into a box.
type Resolver func(v core.Vertex) (moncat.Box, error)

// MetadataResolver rebuilds boxes from vertex metadata alone. Swaps get
// their leaf back through moncat.Swap; every other box comes back opaque.
//
// Data is taken as stored. After ReadJSON every number is a float64 and
// every object a map[string]any, so a box whose data was an int or a struct
// does not compare Equal to its original once it has been through JSON.
func MetadataResolver() Resolver {
	return func(v core.Vertex) (moncat.Box, error) {
		m, err := readMeta(v)
		if err != nil {
			return moncat.Box{}, err
		}
		if m.swap {
			return m.swapBox(), nil
		}
		var opts []moncat.BoxOption
		if m.data != nil {
			opts = append(opts, moncat.WithData(m.data))
		}
		if m.selfAdj {
			opts = append(opts, moncat.WithSelfAdjoint())
		}
		if m.dagger {
			return moncat.NewBox(m.name, m.cod, m.dom, opts...).Dagger(), nil
		}

		return moncat.NewBox(m.name, m.dom, m.cod, opts...), nil
	}
}

// RegistryResolver looks boxes up by name, restoring their leaves.
// The lookup must return a single box; daggered vertices get its dagger.
func RegistryResolver(lookup moncat.Lookup) Resolver {
	return func(v core.Vertex) (moncat.Box, error) {
		m, err := readMeta(v)
		if err != nil {
			return moncat.Box{}, err
		}
		if m.swap {
			return m.swapBox(), nil
		}
		a, err := lookup(m.name)
		if err != nil {
			return moncat.Box{}, fmt.Errorf("vertex %s: %w", v.ID, err)
		}
		d := a.Diagram()
		if d.Kind() != moncat.KindBox {
			return moncat.Box{}, fmt.Errorf("%w: vertex %s: %q is not a single box", ErrMetadata, v.ID, m.name)
		}
		b := d.Boxes()[0]
		if m.dagger {
			b = b.Dagger()
		}

		return b, nil
	}
}

type boxMeta struct {
	name     string
	dom, cod moncat.Ty
	data     any
	dagger   bool
	selfAdj  bool
	swap     bool
	swapLeft int
}

func (m boxMeta) swapBox() moncat.Box {
	w := m.dom.Width()

	return moncat.Swap(m.dom.Slice(0, m.swapLeft), m.dom.Slice(m.swapLeft, w))
}

func readMeta(v core.Vertex) (boxMeta, error) {
	var m boxMeta
	name, ok := v.Metadata[MetaName].(string)
	if !ok || name == "" {
		return m, fmt.Errorf("%w: vertex %s has no %q", ErrMetadata, v.ID, MetaName)
	}
	m.name = name
	for key, dst := range map[string]*moncat.Ty{MetaDom: &m.dom, MetaCod: &m.cod} {
		s, ok := v.Metadata[key].(string)
		if !ok {
			return m, fmt.Errorf("%w: vertex %s has no %q", ErrMetadata, v.ID, key)
		}
		ty, err := moncat.ParseType(s)
		if err != nil {
			return m, fmt.Errorf("%w: vertex %s: %w", ErrMetadata, v.ID, err)
		}
		*dst = ty
	}
	m.data = v.Metadata[MetaData]
	m.dagger, _ = v.Metadata[MetaDagger].(bool)
	m.selfAdj, _ = v.Metadata[MetaSelfAdj].(bool)
	if left, ok := toInt(v.Metadata[MetaSwapLeft]); ok {
		if left < 0 || left > m.dom.Width() {
			return m, fmt.Errorf("%w: vertex %s: swap_left %d", ErrMetadata, v.ID, left)
		}
		m.swap, m.swapLeft = true, left
	}

	return m, nil
}

// toInt accepts the integer forms metadata takes in memory (int) and
// after a JSON round trip (float64).
func toInt(x any) (int, bool) {
	switch n := x.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	}

	return 0, false
}
