// SPDX-License-Identifier: MIT
// File: failure.go
// Role: closed failure taxonomy and the mapping from engine errors onto it.

package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/sna/centrality"
	"github.com/katalvlaran/sna/cohesion"
	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/dijkstra"
	"github.com/katalvlaran/sna/distance"
	"github.com/katalvlaran/sna/equivalence"
	"github.com/katalvlaran/sna/flow"
	"github.com/katalvlaran/sna/matrix"
)

// Kind classifies a failed request.
type Kind int

// Failure kinds.
const (
	Internal Kind = iota
	InvalidVertex
	RequiresConnectedGraph
	DegenerateWeight
	SingularMatrix
	NoConvergence
	UndefinedMetric
	UndefinedResult
	Cancelled
	InvalidArgument
	ConfirmationRequired
)

var kindNames = [...]string{
	Internal:               "internal",
	InvalidVertex:          "invalid vertex",
	RequiresConnectedGraph: "requires connected graph",
	DegenerateWeight:       "degenerate weight",
	SingularMatrix:         "singular matrix",
	NoConvergence:          "no convergence",
	UndefinedMetric:        "undefined metric",
	UndefinedResult:        "undefined result",
	Cancelled:              "cancelled",
	InvalidArgument:        "invalid argument",
	ConfirmationRequired:   "confirmation required",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Failure is the typed error every Session method returns.
type Failure struct {
	Kind Kind
	Op   string
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s: %v", f.Op, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// kindTable lists sentinel → kind in match order.
var kindTable = []struct {
	target error
	kind   Kind
}{
	{context.Canceled, Cancelled},
	{context.DeadlineExceeded, Cancelled},
	{core.ErrInvalidVertex, InvalidVertex},
	{centrality.ErrRequiresConnectedGraph, RequiresConnectedGraph},
	{dijkstra.ErrDegenerateWeight, DegenerateWeight},
	{matrix.ErrSingular, SingularMatrix},
	{centrality.ErrNoConvergence, NoConvergence},
	{centrality.ErrUndefinedMetric, UndefinedMetric},
	{distance.ErrUndefined, UndefinedResult},
	{matrix.ErrTooExpensive, ConfirmationRequired},
	{dijkstra.ErrNegativeWeight, InvalidArgument},
	{flow.ErrNegativeCapacity, InvalidArgument},
	{matrix.ErrBadPower, InvalidArgument},
	{centrality.ErrUnknownIndex, InvalidArgument},
	{centrality.ErrOptionViolation, InvalidArgument},
	{centrality.ErrNilGraph, InvalidArgument},
	{cohesion.ErrNilGraph, InvalidArgument},
	{equivalence.ErrNilGraph, InvalidArgument},
	{equivalence.ErrUnknownChoice, InvalidArgument},
	{equivalence.ErrBadTable, InvalidArgument},
	{ErrUnknownMatrix, InvalidArgument},
}

// classify wraps err into a *Failure for op; nil stays nil and an existing
// Failure is returned unchanged.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return f
	}

	return &Failure{Kind: KindOf(err), Op: op, Err: err}
}

// KindOf returns the failure kind err maps to (Internal when none matches).
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	for _, e := range kindTable {
		if errors.Is(err, e.target) {
			return e.kind
		}
	}

	return Internal
}
