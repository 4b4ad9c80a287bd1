// Package ir provides the in-memory tree for property-list-like documents.
//
// # Overview
//
// A document is a tree of Nodes: dictionaries (ObjectType), arrays
// (ArrayType) and scalar leaves (string, number, bool, null). Documents are
// decoded from JSON or YAML with key order preserved:
//
//	doc, err := ir.FromJSON(data)
//	doc, err := ir.FromYAML(data)
//
// # Structure
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i],
// so there are always as many fields as values. Every child carries its
// Parent, ParentIndex and, under an object, ParentField.
//
// Numbers are placed under Int64 when they are integers, Float64 when they
// are floating point, and Number as a string fallback otherwise.
//
// # Key paths
//
// Nodes are addressed with KVC paths, broken into components by the kvcpath
// package:
//
//	name, err := doc.Get("root.items[3].name")
//	err = doc.Set("root.items[4]", ir.FromString("new"))
//	err = doc.Delete("root.items[0]")
//	path := node.KVCPath() // e.g. [root items [3] name]
//
// A key applied to an array maps over its elements. Operators aggregate an
// array: @count, @sum, @avg, @min, @max, @unionOfObjects and
// @distinctUnionOfObjects. The components after an operator are walked on
// each element before aggregating, so "orders.@sum.total" sums the totals.
//
// Errors wrap ErrNotFound, ErrType, ErrIndex and ErrOperator.
//
// # Thread Safety
//
// Nodes are not safe for concurrent use.
//
// # Related Packages
//
//   - github.com/signadot/plistkvc/kvcpath - path tokenizer
//   - github.com/signadot/plistkvc/edit - JSON Patch mutation
package ir
