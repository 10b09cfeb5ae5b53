// SPDX-License-Identifier: MIT

// Package dfs orders and checks core.Graph port multigraphs.
//
// What:
//
//   - DetectCycle: three-colour depth-first search (White, Gray, Black)
//     reporting whether the graph has a directed cycle, and one such cycle.
//   - TopologicalSort: Kahn's algorithm with a min-heap frontier, so the
//     result is the lexicographically smallest topological order (or the
//     smallest under a custom WithLess). Returns ErrCycleDetected on cycles.
//
// Why:
//
//   - Decoding an open graph back into a diagram needs a deterministic
//     layer order that respects every wire.
//
// Complexity:
//
//   - DetectCycle:     Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O((V+E)·logV), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph pointer is nil
//   - ErrCycleDetected  cycle discovered by TopologicalSort
//   - context.Canceled  sort cancelled via WithCancelContext
package dfs
