// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/sna/core"
)

// Reach returns a mask of the indices reachable from src (src included).
//
// Complexity: O(V + E).
func Reach(v *core.View, src int, opts ...Option) ([]bool, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if src < 0 || src >= v.N() {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, src, v.N())
	}

	seen := make([]bool, v.N())
	if err := walk(v, src, seen, cfg, func(int) {}); err != nil {
		return nil, err
	}

	return seen, nil
}

// Components returns the weakly connected components of v.
// For undirected views these are the ordinary connected components.
//
// Complexity: O(V + E).
func Components(v *core.View) ([][]int, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	cfg := DefaultOptions()
	cfg.Undirected = true
	seen := make([]bool, v.N())
	var comps [][]int
	for s := 0; s < v.N(); s++ {
		if seen[s] {
			continue
		}
		var comp []int
		if err := walk(v, s, seen, cfg, func(i int) { comp = append(comp, i) }); err != nil {
			return nil, err
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// StrongComponents returns the strongly connected components of v using
// Kosaraju's two passes: finish order on arcs, then reverse-arc sweeps.
//
// Complexity: O(V + E).
func StrongComponents(v *core.View) ([][]int, error) {
	if v == nil {
		return nil, ErrViewNil
	}
	n := v.N()

	// 1) Post-order finish sequence following arcs forward.
	order := make([]int, 0, n)
	seen := make([]bool, n)
	type frame struct{ node, next int }
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		seen[s] = true
		stack := []frame{{node: s}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := v.Out(top.node)
			if top.next < len(out) {
				w := out[top.next].To
				top.next++
				if !seen[w] {
					seen[w] = true
					stack = append(stack, frame{node: w})
				}
				continue
			}
			order = append(order, top.node)
			stack = stack[:len(stack)-1]
		}
	}

	// 2) Sweep reversed arcs in decreasing finish time.
	assigned := make([]bool, n)
	var comps [][]int
	for k := n - 1; k >= 0; k-- {
		s := order[k]
		if assigned[s] {
			continue
		}
		assigned[s] = true
		comp := []int{s}
		stack := []int{s}
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, a := range v.In(u) {
				if !assigned[a.To] {
					assigned[a.To] = true
					comp = append(comp, a.To)
					stack = append(stack, a.To)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	sort.Slice(comps, func(i, j int) bool { return comps[i][0] < comps[j][0] })

	return comps, nil
}

// walk marks everything reachable from s, calling visit once per newly seen index.
func walk(v *core.View, s int, seen []bool, cfg Options, visit func(int)) error {
	stack := []int{s}
	seen[s] = true
	visit(s)
	for len(stack) > 0 {
		if err := cfg.Ctx.Err(); err != nil {
			return fmt.Errorf("dfs: %w", err)
		}
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		push := func(arcs []core.Arc) {
			for k := len(arcs) - 1; k >= 0; k-- {
				w := arcs[k].To
				if !seen[w] {
					seen[w] = true
					visit(w)
					stack = append(stack, w)
				}
			}
		}
		push(v.Out(u))
		if cfg.Undirected {
			push(v.In(u))
		}
	}

	return nil
}
