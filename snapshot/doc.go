// Package snapshot reads and writes graph snapshots in YAML or TOML.
//
// A snapshot lists vertices with caller-chosen identifiers and ties grouped
// by relation; it is the input format of the snagraph CLI:
//
//	directed: true
//	relations: [advice, friendship]
//	vertices:
//	  - {id: 1, label: Ann}
//	  - {id: 2, label: Bob}
//	ties:
//	  - {from: 1, to: 2, weight: 2, relation: friendship}
//
// Omitted weights default to core.DefaultWeight and omitted relations to the
// first listed one. Decoding restores vertex identifiers exactly, so ids in
// reports match the file.
package snapshot
