// SPDX-License-Identifier: MIT
// File: relations.go
// Role: Multi-relation management. A graph holds several independent edge sets
//       over one vertex set; exactly one is active and every query reads it.

package core

import "fmt"

// AddRelation appends an empty relation and returns its index.
// The active relation does not change.
func (g *Graph) AddRelation(name string) int {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	g.relations = append(g.relations, newRelation(name))

	return len(g.relations) - 1
}

// SetActiveRelation makes relation i the one all queries observe.
func (g *Graph) SetActiveRelation(i int) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if i < 0 || i >= len(g.relations) {
		return fmt.Errorf("SetActiveRelation(%d): %w", i, ErrRelationNotFound)
	}
	if i != g.active {
		g.active = i
		g.bump()
	}

	return nil
}

// ActiveRelation returns the index of the active relation.
func (g *Graph) ActiveRelation() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.active
}

// RelationCount returns the number of relations (always ≥ 1).
func (g *Graph) RelationCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.relations)
}

// Relations returns relation names in index order.
func (g *Graph) Relations() []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	names := make([]string, len(g.relations))
	for i, r := range g.relations {
		names[i] = r.name
	}

	return names
}
