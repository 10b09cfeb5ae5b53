// SPDX-License-Identifier: MIT

// Package diagramfile reads and writes diagrams stored as TOML.
//
// A file names its diagram either by expression or by explicit layers,
// and may define extra boxes on top of the learner vocabulary:
//
//	name  = "affine"
//	dom   = 1
//	expr  = "w >> Id(1) @ b >> ADD"
//	input = [2.0]
//
//	[[box]]
//	name  = "w"
//	kind  = "mult"
//	value = 3.0
//
//	[[box]]
//	name  = "b"
//	kind  = "bias"
//	value = 1.0
//
// The layer form lists boxes by their printed name and offset:
//
//	[[layer]]
//	box    = "COPY"
//	offset = 0
package diagramfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvcat/learner"
	"github.com/katalvlaran/lvcat/moncat"
)

// ErrFormat reports a file that decodes but does not describe a diagram.
var ErrFormat = errors.New("diagramfile: invalid diagram file")

// Box kinds accepted in [[box]] tables.
const (
	KindMult    = "mult"
	KindBias    = "bias"
	KindCopy    = "copy"
	KindSum     = "sum"
	KindSigmoid = "sigmoid"
	KindAdd     = "add"
	KindSwap    = "swap"
	KindDiscard = "discard"
	KindNeuron  = "neuron"
	KindLayer   = "layer"
	KindOpaque  = "opaque"
)

// File is the decoded form of a diagram file.
type File struct {
	Name   string     `toml:"name,omitempty"`
	Dom    *int       `toml:"dom"`
	Expr   string     `toml:"expr,omitempty"`
	Layers []LayerDef `toml:"layer,omitempty"`
	Input  []float64  `toml:"input,omitempty"`
	Boxes  []BoxDef   `toml:"box,omitempty"`
}

// LayerDef is one [[layer]] entry.
type LayerDef struct {
	Box    string `toml:"box"`
	Offset int    `toml:"offset"`
}

// BoxDef is one [[box]] entry. Which fields matter depends on Kind:
//
//	mult, bias        value
//	copy              dom, copies (default 2)
//	sum               cod, copies (default 2)
//	discard           dom
//	neuron            dom, weights (dom weights then a bias)
//	layer             dom, cod, weights (cod rows of dom+1)
//	opaque            dom, cod
//	sigmoid, add, swap
type BoxDef struct {
	Name    string    `toml:"name"`
	Kind    string    `toml:"kind"`
	Dom     int       `toml:"dom,omitempty"`
	Cod     int       `toml:"cod,omitempty"`
	Copies  int       `toml:"copies,omitempty"`
	Value   float64   `toml:"value,omitempty"`
	Weights []float64 `toml:"weights,omitempty"`
}

// Load reads and decodes the file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes TOML. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrFormat, strings.Join(keys, ", "))
	}

	return &f, nil
}

// Registry returns the learner vocabulary extended with the file's boxes.
func (f *File) Registry() (*learner.Registry, error) {
	reg := learner.NewRegistry()
	for i, def := range f.Boxes {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: box %d has no name", ErrFormat, i)
		}
		a, err := def.Arrow()
		if err != nil {
			return nil, fmt.Errorf("box %q: %w", def.Name, err)
		}
		if err := reg.Register(def.Name, a); err != nil {
			return nil, fmt.Errorf("box %q: %w", def.Name, err)
		}
	}

	return reg, nil
}

// Arrow builds the box or sub-diagram a definition describes.
func (def BoxDef) Arrow() (moncat.Arrow, error) {
	copies := def.Copies
	if copies == 0 {
		copies = 2
	}
	switch def.Kind {
	case KindMult:
		return learner.Mult(def.Value), nil
	case KindBias:
		return learner.Bias(def.Value), nil
	case KindCopy:
		return learner.Copy(def.Dom, copies)
	case KindSum:
		return learner.Sum(def.Cod, copies)
	case KindSigmoid:
		return learner.Sigmoid(), nil
	case KindAdd:
		return learner.Add(), nil
	case KindSwap:
		return learner.Swap(), nil
	case KindDiscard:
		return learner.Discard(def.Dom)
	case KindNeuron:
		return learner.Neuron(def.Dom, def.Weights)
	case KindLayer:
		row := def.Dom + 1
		if def.Cod < 0 || len(def.Weights) != def.Cod*row {
			return nil, fmt.Errorf("%w: layer %d -> %d needs %d weights, got %d",
				learner.ErrWeights, def.Dom, def.Cod, def.Cod*row, len(def.Weights))
		}
		params := make([][]float64, def.Cod)
		for i := range params {
			params[i] = def.Weights[i*row : (i+1)*row]
		}
		return learner.Layer(def.Dom, def.Cod, params)
	case KindOpaque:
		return moncat.NewPROBox(def.Name, def.Dom, def.Cod)
	default:
		return nil, fmt.Errorf("%w: unknown box kind %q", ErrFormat, def.Kind)
	}
}

// Build resolves the file into a diagram. It also returns the registry
// used, so callers can parse further expressions against the same names.
//
// Implementation:
//   - Stage 1: extend the learner registry with the [[box]] definitions.
//   - Stage 2: parse expr, or decode the [[layer]] list from dom.
//   - Stage 3: check the declared dom against the result.
func (f *File) Build() (moncat.Diagram, *learner.Registry, error) {
	reg, err := f.Registry()
	if err != nil {
		return moncat.Diagram{}, nil, err
	}

	var d moncat.Diagram
	switch {
	case f.Expr != "" && len(f.Layers) > 0:
		return moncat.Diagram{}, nil, fmt.Errorf("%w: both expr and layers are set", ErrFormat)
	case f.Expr != "":
		d, err = moncat.Parse(f.Expr, reg.Lookup)
	case f.Dom == nil:
		return moncat.Diagram{}, nil, fmt.Errorf("%w: a layer list needs dom", ErrFormat)
	default:
		d, err = f.decodeLayers(reg)
	}
	if err != nil {
		return moncat.Diagram{}, nil, err
	}
	if f.Dom != nil && d.Dom().Width() != *f.Dom {
		return moncat.Diagram{}, nil, fmt.Errorf("%w: dom is %d, diagram takes %s", ErrFormat, *f.Dom, d.Dom())
	}

	return d, reg, nil
}

func (f *File) decodeLayers(reg *learner.Registry) (moncat.Diagram, error) {
	dom, err := moncat.NewPRO(*f.Dom)
	if err != nil {
		return moncat.Diagram{}, err
	}
	ls := make([]moncat.Layer, len(f.Layers))
	for i, l := range f.Layers {
		b, err := resolveBox(reg, l.Box)
		if err != nil {
			return moncat.Diagram{}, fmt.Errorf("layer %d: %w", i, err)
		}
		ls[i] = moncat.Layer{Box: b, Offset: l.Offset}
	}

	return moncat.Decode(dom, ls)
}

// resolveBox looks up a printed box name; a trailing "†" asks for the dagger.
func resolveBox(reg *learner.Registry, name string) (moncat.Box, error) {
	base, dagger := strings.CutSuffix(strings.TrimSpace(name), "†")
	a, err := reg.Lookup(base)
	if err != nil {
		return moncat.Box{}, err
	}
	d := a.Diagram()
	if d.Kind() != moncat.KindBox {
		return moncat.Box{}, fmt.Errorf("%w: %q is a %s diagram, not a box", ErrFormat, base, d.Kind())
	}
	b := d.Boxes()[0]
	if dagger {
		b = b.Dagger()
	}

	return b, nil
}

// FromDiagram writes d in layer form. Only PRO domains are representable.
func FromDiagram(name string, d moncat.Diagram) (*File, error) {
	w, err := d.Dom().PROWidth()
	if err != nil {
		return nil, err
	}
	f := &File{Name: name, Dom: &w}
	for _, l := range d.Layers() {
		f.Layers = append(f.Layers, LayerDef{Box: l.Box.String(), Offset: l.Offset})
	}

	return f, nil
}

// Encode writes f as TOML.
func (f *File) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}

// Bytes returns the TOML encoding of f.
func (f *File) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
