// SPDX-License-Identifier: MIT
// Package: sna/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Contract:
//   - Option constructors panic on nil functions; constructors never panic.
//   - Later options override earlier ones.

package builder

import (
	"strconv"

	"github.com/katalvlaran/sna/core"
)

// BuilderOption customizes constructor behavior before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors; passed by value.
type builderConfig struct {
	labelFn   func(int) string
	weightFn  func(int) float64
	symmetric bool
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:  strconv.Itoa,
		weightFn: func(int) float64 { return core.DefaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLabelScheme sets the vertex label generator: constructor-local index → label.
func WithLabelScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) { c.labelFn = fn }
}

// WithWeightFn sets the tie weight generator: constructor-local tie index → weight.
func WithWeightFn(fn func(int) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithSymmetricArcs makes Path and Cycle emit both arcs on directed graphs.
// Star, Wheel spokes and Complete always do.
func WithSymmetricArcs() BuilderOption {
	return func(c *builderConfig) { c.symmetric = true }
}

// SymbolLabels labels vertices "A", "B", …, "Z", "AA", "AB", … (spreadsheet style).
func SymbolLabels(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}

	return label
}
