// Package dfs provides iterative depth-first traversals over a core.View:
// single-source reach sets, weak components and strong components.
//
// All traversals use an explicit stack, so chains of any length are safe
// from goroutine stack growth, and visit neighbors in ascending index order.
//
// Functions
//
//   - Reach(v, src, opts...)   – indices reachable from src along arcs.
//   - Components(v)            – weakly connected components (arcs read as edges).
//   - StrongComponents(v)      – strongly connected components (Kosaraju).
//
// Every component is sorted ascending and components are ordered by their
// smallest member.
//
// Complexity: O(V + E) time and O(V) memory for each function.
//
// Errors
//
//   - ErrViewNil          – nil view.
//   - ErrSourceOutOfRange – src outside [0, N).
//   - ctx.Err()           – wrapped, when WithContext's context is cancelled.
package dfs
