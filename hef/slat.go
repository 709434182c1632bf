package hef

import (
	"strconv"
	"strings"
)

// Slat is a single structural element: a part name, a layer tag and a span
// from Origin along Vector.
type Slat struct {
	Name   string
	Layer  int
	Origin Point
	Vector Vector
}

// End is the point the slat reaches.
func (s Slat) End() Point {
	return s.Origin.Add(s.Vector)
}

// Length is the material length needed for the slat under variant: the
// scaled span plus the scaled length of its unit direction.
func (s Slat) Length(variant Variant) float64 {
	return s.Vector.Length(variant) + s.Vector.Unit().Length(variant)
}

// BOMLine renders "<length> <layer> <name>".
func (s Slat) BOMLine(variant Variant) string {
	var b strings.Builder
	b.WriteString(FormatLength(s.Length(variant)))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(s.Layer))
	b.WriteByte(' ')
	b.WriteString(s.Name)
	return b.String()
}

// FormatLength renders a length as the shortest plain decimal that reads
// back to the same value, without an exponent: 4.0 becomes "4".
func FormatLength(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
