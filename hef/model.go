package hef

import "strings"

// Model is a decoded HEF document. P and Q are the caller's parameters and
// properties payloads; they are carried through untouched.
type Model[P, Q any] struct {
	Name       string
	Parameters P
	Properties Q
	Variant    Variant
	Slats      []Slat
}

// New returns an empty model with the identity variant.
func New[P, Q any](name string) *Model[P, Q] {
	return &Model[P, Q]{Name: name, Variant: DefaultVariant()}
}

// Parts lists the distinct part names in the order they first appear.
func (m *Model[P, Q]) Parts() []string {
	seen := make(map[string]struct{}, len(m.Slats))
	var parts []string
	for _, s := range m.Slats {
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		parts = append(parts, s.Name)
	}
	return parts
}

// WithVariant returns a shallow copy of m using variant. Slats are shared
// with m.
func (m *Model[P, Q]) WithVariant(variant Variant) *Model[P, Q] {
	c := *m
	c.Variant = variant
	return &c
}

// BOMLines returns one bill-of-materials line per slat, in slat order.
func (m *Model[P, Q]) BOMLines() []string {
	lines := make([]string, 0, len(m.Slats))
	for _, s := range m.Slats {
		lines = append(lines, s.BOMLine(m.Variant))
	}
	return lines
}

// BOM renders the bill of materials, each line newline-terminated.
func (m *Model[P, Q]) BOM() string {
	var b strings.Builder
	for _, line := range m.BOMLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// LengthTotal sums slat lengths left to right in slat order. The order is
// fixed so totals reproduce exactly.
func (m *Model[P, Q]) LengthTotal() float64 {
	var total float64
	for _, s := range m.Slats {
		total += s.Length(m.Variant)
	}
	return total
}
