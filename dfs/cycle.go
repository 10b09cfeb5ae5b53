// SPDX-License-Identifier: MIT

package dfs

import (
	"github.com/katalvlaran/lvcat/core"
)

// DetectCycle reports whether g contains a directed cycle and, if so,
// returns one as a closed path [v0, v1, ..., v0].
// A nil graph is treated as cycle-free. Roots and successors are
// visited in ID order, so the reported cycle is deterministic.
func DetectCycle(g *core.Graph) (bool, []string, error) {
	if g == nil {
		return false, nil, nil
	}
	c := &cycleFinder{
		g:     g,
		state: make(map[string]int),
	}
	for _, v := range g.Vertices() {
		if c.state[v] != White {
			continue
		}
		found, err := c.visit(v)
		if err != nil {
			return false, nil, err
		}
		if found {
			return true, c.cycle, nil
		}
	}

	return false, nil, nil
}

type cycleFinder struct {
	g     *core.Graph
	state map[string]int
	path  []string
	cycle []string
}

// visit returns true once a back-edge Gray -> Gray is found; c.cycle then
// holds the path from the Gray target back to itself.
func (c *cycleFinder) visit(id string) (bool, error) {
	c.state[id] = Gray
	c.path = append(c.path, id)
	next, err := c.g.Successors(id)
	if err != nil {
		return false, err
	}
	for _, w := range next {
		switch c.state[w] {
		case Gray:
			for i := len(c.path) - 1; i >= 0; i-- {
				if c.path[i] == w {
					c.cycle = append(append([]string{}, c.path[i:]...), w)
					break
				}
			}
			return true, nil
		case White:
			found, err := c.visit(w)
			if err != nil || found {
				return found, err
			}
		}
	}
	c.path = c.path[:len(c.path)-1]
	c.state[id] = Black

	return false, nil
}
