// Package analysis is the single entry point a presentation layer calls.
//
// A Session binds one *core.Graph to a request scope: it carries a UUID for
// logs and spans, a memo of distance results keyed by policy, and the
// logging and telemetry handles. Every method takes an explicit Config
// record, never a process-wide flag, and returns either a result or a
// *Failure whose Kind names what went wrong:
//
//	s := analysis.NewSession(g)
//	set, err := s.Prominence(ctx, analysis.Config{DropIsolates: true}, centrality.ClosenessCentrality)
//	var f *analysis.Failure
//	if errors.As(err, &f) && f.Kind == analysis.RequiresConnectedGraph { ... }
//
// The distance memo is shared by prominence and cohesion calls of the same
// session and is dropped whenever the graph's version changes, so a
// mutation between two calls always leads to recomputation.
//
// Telemetry: each call opens an OpenTelemetry span named "analysis.<Op>"
// and records its duration and outcome on the "sna.analysis" meter. The
// global providers apply unless WithTracerProvider is given; without an SDK
// installed they are no-ops.
//
// A Session is safe for sequential use; concurrent calls on one graph must
// be serialized by the caller.
package analysis
