// Package server exposes the HEF derivations over HTTP. Every endpoint
// takes a complete HEF document as the request body.
//
//	POST /bom            plain-text bill of materials
//	POST /requirements   {"length_total": n}
//	POST /eval?expr=...  result of an HCL expression, as JSON
//	POST /fmt            the document re-encoded
//	GET  /health/live
//	GET  /health/ready
//
// The bom, requirements, eval and fmt endpoints accept ?stock=<name> to
// swap in a preset variant.
package server
