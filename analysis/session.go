// SPDX-License-Identifier: MIT
// File: session.go
// Role: Session, the request scope binding one graph to a distance memo,
//       a logger and telemetry handles; every engine call goes through observe.

package analysis

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
)

// Sentinel errors raised by the facade itself.
var (
	// ErrNilGraph indicates a Session was created without a graph.
	ErrNilGraph = errors.New("analysis: graph is nil")

	// ErrUnknownMatrix indicates a MatrixKind outside the enum.
	ErrUnknownMatrix = errors.New("analysis: unknown matrix kind")
)

// Session binds one graph to a request scope.
type Session struct {
	id     uuid.UUID
	g      *core.Graph
	logger *slog.Logger
	tracer trace.Tracer

	progress      func(done, total int)
	damping       float64
	epsilon       float64
	maxIterations int
	largeAllowed  bool

	mu      sync.Mutex
	version uint64
	memo    map[distance.Options]*distance.Result
}

// NewSession creates a Session over g. Options panic on nil arguments.
func NewSession(g *core.Graph, opts ...Option) *Session {
	s := &Session{
		id:       uuid.New(),
		g:        g,
		logger:   slog.Default(),
		tracer:   otel.Tracer(instrumentationName),
		progress: func(int, int) {},
		memo:     make(map[distance.Options]*distance.Result),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("session", s.id.String()))

	return s
}

// ID returns the session identifier carried by logs and spans.
func (s *Session) ID() string { return s.id.String() }

// Graph returns the bound graph.
func (s *Session) Graph() *core.Graph { return s.g }

// Forget drops every memoized distance result.
func (s *Session) Forget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memo = make(map[distance.Options]*distance.Result)
}

// distances returns the memoized all-pairs result for cfg, recomputing it
// when the graph changed since it was stored.
func (s *Session) distances(ctx context.Context, cfg Config) (*distance.Result, error) {
	opts := cfg.distanceOptions()

	s.mu.Lock()
	defer s.mu.Unlock()

	// 1) Invalidate on any mutation since the memo was filled
	if v := s.g.Version(); v != s.version {
		s.memo = make(map[distance.Options]*distance.Result)
		s.version = v
	}

	// 2) Serve from memo
	if res, ok := s.memo[opts]; ok {
		if memoHits != nil {
			memoHits.Add(ctx, 1)
		}
		trace.SpanFromContext(ctx).AddEvent("distance memo hit")

		return res, nil
	}

	// 3) Compute and store
	res, err := distance.AllPairs(ctx, s.g, opts)
	if err != nil {
		return nil, err
	}
	s.memo[opts] = res

	return res, nil
}

// observe runs fn inside a span, logs the outcome, records metrics, and
// converts any error into a *Failure.
func observe[T any](ctx context.Context, s *Session, op string, cfg Config, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if ctx == nil {
		ctx = context.Background()
	}
	if s.g == nil {
		return zero, &Failure{Kind: InvalidArgument, Op: op, Err: ErrNilGraph}
	}
	recording := true
	if err := initMetrics(); err != nil {
		recording = false
		s.logger.Warn("metrics unavailable", slog.String("error", err.Error()))
	}

	n := s.g.VertexCount()
	ctx, span := s.tracer.Start(ctx, "analysis."+op,
		trace.WithAttributes(
			attribute.String("session.id", s.id.String()),
			attribute.String("policy", cfg.String()),
			attribute.Int("graph.vertices", n),
			attribute.Int("graph.edges", s.g.EdgeCount()),
			attribute.Bool("graph.directed", s.g.Directed()),
		),
	)
	defer span.End()

	start := time.Now()
	out, err := fn(ctx)
	elapsed := time.Since(start)

	err = classify(op, err)
	kind := ""
	if err != nil {
		var f *Failure
		errors.As(err, &f)
		kind = f.Kind.String()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("failure.kind", kind))
		s.logger.Warn("analysis failed",
			slog.String("op", op),
			slog.String("policy", cfg.String()),
			slog.String("kind", kind),
			slog.Duration("duration", elapsed),
			slog.String("error", err.Error()),
		)
	} else {
		s.logger.Debug("analysis done",
			slog.String("op", op),
			slog.String("policy", cfg.String()),
			slog.Int("vertices", n),
			slog.Duration("duration", elapsed),
		)
	}

	if recording {
		attrs := metric.WithAttributes(attribute.String("op", op), attribute.Bool("success", err == nil))
		callDuration.Record(ctx, elapsed.Seconds(), attrs)
		callTotal.Add(ctx, 1, attrs)
		graphVertices.Record(ctx, int64(n), metric.WithAttributes(attribute.String("op", op)))
		if err != nil {
			callFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("op", op), attribute.String("kind", kind)))
		}
	}
	if err != nil {
		return zero, err
	}

	return out, nil
}
