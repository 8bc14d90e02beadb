// SPDX-License-Identifier: MIT
// File: snapshot.go
// Role: Document model, format detection, and the Graph ⇄ Document mapping.

package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sna/core"
)

// Sentinel errors.
var (
	// ErrUnknownFormat indicates neither YAML nor TOML could be chosen.
	ErrUnknownFormat = errors.New("snapshot: unknown format")

	// ErrUnknownRelation indicates a tie names a relation not listed in relations.
	ErrUnknownRelation = errors.New("snapshot: unknown relation")

	// ErrNilGraph indicates Encode was given a nil graph.
	ErrNilGraph = errors.New("snapshot: graph is nil")
)

// Format is a snapshot serialization.
type Format int

// Supported formats.
const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks a format from a file extension (.yaml, .yml, .toml).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}

	return 0, fmt.Errorf("FormatOf(%q): %w", path, ErrUnknownFormat)
}

// Document is the serialized form of a graph.
type Document struct {
	Directed  bool          `yaml:"directed" toml:"directed"`
	Loops     bool          `yaml:"loops,omitempty" toml:"loops,omitempty"`
	Relations []string      `yaml:"relations,omitempty" toml:"relations,omitempty"`
	Vertices  []VertexEntry `yaml:"vertices" toml:"vertices"`
	Ties      []TieEntry    `yaml:"ties,omitempty" toml:"ties,omitempty"`
}

// VertexEntry is one vertex record.
type VertexEntry struct {
	ID    core.VertexID `yaml:"id" toml:"id"`
	Label string        `yaml:"label,omitempty" toml:"label,omitempty"`
	X     float64       `yaml:"x,omitempty" toml:"x,omitempty"`
	Y     float64       `yaml:"y,omitempty" toml:"y,omitempty"`
}

// TieEntry is one tie; Weight nil means core.DefaultWeight.
type TieEntry struct {
	From     core.VertexID `yaml:"from" toml:"from"`
	To       core.VertexID `yaml:"to" toml:"to"`
	Weight   *float64      `yaml:"weight,omitempty" toml:"weight,omitempty"`
	Relation string        `yaml:"relation,omitempty" toml:"relation,omitempty"`
}

// Load reads the snapshot at path, choosing the format by extension.
func Load(path string) (*core.Graph, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	g, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return g, nil
}

// Decode parses one snapshot and builds the graph it describes.
// The first relation is active on return.
func Decode(r io.Reader, f Format) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}
	var doc Document
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	case TOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("Decode: %w", ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("Decode(%s): %w", f, err)
	}

	return doc.Build()
}

// Build creates the graph described by d.
//
// Stages:
//  1. Create the graph and its relations.
//  2. Add vertices under their own identifiers.
//  3. Add ties relation by relation.
//
// Errors: core.ErrDuplicateVertex, core.ErrInvalidVertex, core.ErrBadWeight,
// core.ErrLoopNotAllowed, ErrUnknownRelation (all wrapped).
func (d *Document) Build() (*core.Graph, error) {
	// 1) Graph and relations
	gopts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Loops {
		gopts = append(gopts, core.WithLoops())
	}
	if len(d.Relations) > 0 {
		gopts = append(gopts, core.WithRelationName(d.Relations[0]))
	}
	g := core.NewGraph(gopts...)
	index := map[string]int{}
	for i, name := range d.Relations {
		if i > 0 {
			g.AddRelation(name)
		}
		index[name] = i
	}

	// 2) Vertices
	for _, v := range d.Vertices {
		if err := g.AddVertexWithID(v.ID, v.Label); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if v.X != 0 || v.Y != 0 {
			if err := g.SetPosition(v.ID, v.X, v.Y); err != nil {
				return nil, fmt.Errorf("Build: %w", err)
			}
		}
	}

	// 3) Ties
	for _, t := range d.Ties {
		rel := 0
		if t.Relation != "" {
			i, ok := index[t.Relation]
			if !ok {
				return nil, fmt.Errorf("Build: tie %d→%d: %w %q", t.From, t.To, ErrUnknownRelation, t.Relation)
			}
			rel = i
		}
		if err := g.SetActiveRelation(rel); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		w := core.DefaultWeight
		if t.Weight != nil {
			w = *t.Weight
		}
		if err := g.AddEdge(t.From, t.To, w); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	if err := g.SetActiveRelation(0); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}

// Encode writes g as a snapshot. Every relation is written; the active
// relation is restored before returning.
func Encode(w io.Writer, g *core.Graph, f Format) error {
	if g == nil {
		return ErrNilGraph
	}
	doc, err := FromGraph(g)
	if err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	var data []byte
	switch f {
	case YAML:
		data, err = yaml.Marshal(doc)
	case TOML:
		data, err = toml.Marshal(doc)
	default:
		return fmt.Errorf("Encode: %w", ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("Encode(%s): %w", f, err)
	}
	_, err = w.Write(data)

	return err
}

// FromGraph captures g as a Document. Default weights are omitted.
func FromGraph(g *core.Graph) (*Document, error) {
	doc := &Document{
		Directed:  g.Directed(),
		Loops:     g.Looped(),
		Relations: g.Relations(),
	}
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return nil, err
		}
		doc.Vertices = append(doc.Vertices, VertexEntry{ID: v.ID, Label: v.Label, X: v.X, Y: v.Y})
	}

	for i, name := range doc.Relations {
		edges, err := g.RelationEdges(i)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			t := TieEntry{From: e.From, To: e.To}
			if e.Weight != core.DefaultWeight {
				w := e.Weight
				t.Weight = &w
			}
			if i > 0 {
				t.Relation = name
			}
			doc.Ties = append(doc.Ties, t)
		}
	}

	return doc, nil
}
