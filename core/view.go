// SPDX-License-Identifier: MIT
// File: view.go
// Role: View, an immutable dense-index snapshot of the active relation.
//       Analysis packages read Views instead of the locked Graph so one
//       computation sees one consistent state.
// Determinism:
//   - Index i corresponds to the i-th smallest retained VertexID.
//   - Out(i)/In(i) are sorted by neighbor index.

package core

import "sort"

// Arc is one adjacency entry of a View: the neighbor's dense index and the tie weight.
type Arc struct {
	To     int
	Weight float64
}

// View is a read-only snapshot of the active relation over a dense index space.
type View struct {
	directed bool
	weighted bool
	ids      []VertexID
	index    map[VertexID]int
	out      [][]Arc
	in       [][]Arc
	w        []map[int]float64
	isolates int
	dropped  []VertexID
	version  uint64
}

// View snapshots the active relation. When dropIsolates is true, vertices with
// no tie to another vertex are left out of the index space.
//
// Complexity: O(V log V + E log d).
func (g *Graph) View(dropIsolates bool) *View {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	r := g.relations[g.active]
	v := &View{
		directed: g.directed,
		index:    make(map[VertexID]int, len(g.vertices)),
		version:  g.Version(),
	}

	// 1) Collect retained identifiers in ascending order.
	all := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		all = append(all, id)
	}
	sort.Ints(all)
	for _, id := range all {
		if r.isolated(id) {
			v.isolates++
			if dropIsolates {
				v.dropped = append(v.dropped, id)
				continue
			}
		}
		v.index[id] = len(v.ids)
		v.ids = append(v.ids, id)
	}

	// 2) Fill adjacency rows over dense indices.
	n := len(v.ids)
	v.out = make([][]Arc, n)
	v.in = make([][]Arc, n)
	v.w = make([]map[int]float64, n)
	for i, id := range v.ids {
		v.w[i] = make(map[int]float64, len(r.out[id]))
		for nb, wt := range r.out[id] {
			j, ok := v.index[nb]
			if !ok {
				continue
			}
			v.out[i] = append(v.out[i], Arc{To: j, Weight: wt})
			v.w[i][j] = wt
			if wt != DefaultWeight {
				v.weighted = true
			}
		}
		for nb, wt := range r.in[id] {
			if j, ok := v.index[nb]; ok {
				v.in[i] = append(v.in[i], Arc{To: j, Weight: wt})
			}
		}
		sortArcs(v.out[i])
		sortArcs(v.in[i])
	}

	return v
}

func sortArcs(a []Arc) {
	sort.Slice(a, func(x, y int) bool { return a[x].To < a[y].To })
}

// N returns the number of vertices in the view.
func (v *View) N() int { return len(v.ids) }

// ID maps dense index i back to its VertexID.
func (v *View) ID(i int) VertexID { return v.ids[i] }

// IDs returns the retained identifiers in index order. The slice is shared; do not modify.
func (v *View) IDs() []VertexID { return v.ids }

// Index maps id to its dense index; ok is false if id is absent or was dropped.
func (v *View) Index(id VertexID) (int, bool) {
	i, ok := v.index[id]

	return i, ok
}

// Weight returns the weight of i→j, or 0 when there is no tie.
func (v *View) Weight(i, j int) float64 { return v.w[i][j] }

// HasArc reports whether i→j exists.
func (v *View) HasArc(i, j int) bool {
	_, ok := v.w[i][j]

	return ok
}

// Out returns the ties leaving i.
func (v *View) Out(i int) []Arc { return v.out[i] }

// In returns the ties entering i; Arc.To holds the tail index.
func (v *View) In(i int) []Arc { return v.in[i] }

// Directed reports whether ties are arcs.
func (v *View) Directed() bool { return v.directed }

// Weighted reports whether any retained tie has a non-unit weight.
func (v *View) Weighted() bool { return v.weighted }

// IsIsolate reports whether i has no tie to another vertex.
func (v *View) IsIsolate(i int) bool {
	for _, a := range v.out[i] {
		if a.To != i {
			return false
		}
	}
	for _, a := range v.in[i] {
		if a.To != i {
			return false
		}
	}

	return true
}

// Isolates returns the number of isolated vertices in the source graph,
// whether or not they were dropped.
func (v *View) Isolates() int { return v.isolates }

// Dropped lists the isolates left out of the index space, ascending.
func (v *View) Dropped() []VertexID { return v.dropped }

// Version is the graph version the view was taken at.
func (v *View) Version() uint64 { return v.version }
