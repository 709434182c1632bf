// Package query evaluates HCL expressions against a decoded HEF model, for
// example `length_total * 1.1` or `[for s in slats : s.length if s.layer == 0]`.
//
// Expressions see the variables name, parameters, properties, variant, parts,
// slats and length_total, plus a small set of functions from the go-cty
// standard library.
package query
