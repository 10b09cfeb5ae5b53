// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

// Visitation states of a vertex.
const (
	White = iota // not visited yet
	Gray         // on the current DFS path
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// TopologicalSort or DetectCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx  context.Context
	less func(a, b string) bool
}

func defaultTopoOptions() topoOptions {
	return topoOptions{
		ctx:  context.Background(),
		less: func(a, b string) bool { return a < b },
	}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLess sets the tie-break among ready vertices; the default is
// ascending ID. Passing nil has no effect.
func WithLess(less func(a, b string) bool) TopoOption {
	return func(o *topoOptions) {
		if less != nil {
			o.less = less
		}
	}
}
