// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvcat/core"
	"github.com/katalvlaran/lvcat/internal/diagramfile"
	"github.com/katalvlaran/lvcat/learner"
	"github.com/katalvlaran/lvcat/moncat"
	"github.com/katalvlaran/lvcat/opengraph"
)

// source is a diagram together with where it came from.
type source struct {
	name    string
	diagram moncat.Diagram
	file    *diagramfile.File // nil unless read from TOML
	reg     *learner.Registry
}

// loadSource reads arg as a TOML diagram file, an open-graph JSON file, or,
// when no such file exists, as an expression over the learner vocabulary.
func loadSource(arg string) (*source, error) {
	info, err := os.Stat(arg)
	switch {
	case err == nil && info.IsDir():
		return nil, fmt.Errorf("%s is a directory", arg)
	case err == nil && strings.EqualFold(filepath.Ext(arg), ".json"):
		return loadGraph(arg)
	case err == nil:
		f, err := diagramfile.Load(arg)
		if err != nil {
			return nil, err
		}
		d, reg, err := f.Build()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		name := f.Name
		if name == "" {
			name = filepath.Base(arg)
		}
		return &source{name: name, diagram: d, file: f, reg: reg}, nil
	case errors.Is(err, fs.ErrNotExist) && !looksLikePath(arg):
		reg := learner.NewRegistry()
		d, err := moncat.Parse(arg, reg.Lookup)
		if err != nil {
			return nil, err
		}
		return &source{name: arg, diagram: d, reg: reg}, nil
	default:
		return nil, err
	}
}

// loadGraph decodes an open graph, restoring leaves for the learner
// vocabulary and leaving other boxes opaque.
func loadGraph(path string) (*source, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	g, err := opengraph.ReadJSON(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	reg := learner.NewRegistry()
	byName := opengraph.RegistryResolver(reg.Lookup)
	byMeta := opengraph.MetadataResolver()
	d, err := opengraph.Decode(g, func(v core.Vertex) (moncat.Box, error) {
		b, err := byName(v)
		if errors.Is(err, moncat.ErrUnknownBox) {
			return byMeta(v)
		}
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &source{name: filepath.Base(path), diagram: d, reg: reg}, nil
}

// looksLikePath reports whether a missing argument was meant as a file.
func looksLikePath(arg string) bool {
	ext := strings.ToLower(filepath.Ext(arg))
	return ext == ".toml" || ext == ".json" || strings.ContainsRune(arg, os.PathSeparator)
}
