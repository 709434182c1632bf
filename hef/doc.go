// Package hef reads and writes the Hyperwood Exchange Format (HEF), a
// line-oriented description of an assembly of slats in 3D space, and
// derives a bill of materials from the decoded model.
//
// A document starts with three magic lines, the model name and three
// single-line JSON documents (parameters, variant, properties). A counted
// table of part names follows, then one record per slat:
//
//	<ox> <oy> <oz> <vx> <vy> <vz> <layer> <part_index>
//
// The parameters and properties payloads are opaque to this package. Model
// is generic over them and any type encoding/json can round-trip will do.
package hef
