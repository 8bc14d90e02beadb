// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUndefined reports a summary that has no finite pair to be computed over.
var ErrUndefined = errors.New("distance: undefined")

// Options is the per-call policy record.
type Options struct {
	ConsiderWeights bool
	InvertWeights   bool
	DropIsolates    bool
}

// String renders the policy for logs, e.g. "weights=on inverted=off isolates=kept".
func (o Options) String() string {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	iso := "kept"
	if o.DropIsolates {
		iso = "dropped"
	}

	return fmt.Sprintf("weights=%s inverted=%s isolates=%s", onOff(o.ConsiderWeights), onOff(o.InvertWeights), iso)
}

// Class is the connectedness classification of a graph.
type Class int

const (
	// Connected: undirected, every pair joined by a path (also any graph with n ≤ 1).
	Connected Class = iota
	// StronglyConnected: directed, every ordered pair joined by a path.
	StronglyConnected
	// UnilaterallyConnected: directed, every pair joined in at least one direction.
	UnilaterallyConnected
	// WeaklyConnected: directed, connected only when arcs are read as edges.
	WeaklyConnected
	// DisconnectedWithIsolates: connected (strongly, if directed) once isolates are set aside.
	DisconnectedWithIsolates
	// Disconnected: none of the above.
	Disconnected
)

var classNames = [...]string{
	Connected:                "connected",
	StronglyConnected:        "strongly connected",
	UnilaterallyConnected:    "unilaterally connected",
	WeaklyConnected:          "weakly connected",
	DisconnectedWithIsolates: "disconnected (isolates)",
	Disconnected:             "disconnected",
}

// String returns the human-readable class name.
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}

	return classNames[c]
}

// IsConnected reports whether every vertex reaches every other (Connected or StronglyConnected).
func (c Class) IsConnected() bool {
	return c == Connected || c == StronglyConnected
}

// ParseClass is the inverse of String, case-insensitive.
func ParseClass(s string) (Class, error) {
	for i, name := range classNames {
		if strings.EqualFold(s, name) {
			return Class(i), nil
		}
	}

	return 0, fmt.Errorf("distance: unknown connectedness class %q", s)
}
