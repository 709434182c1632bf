package hef

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Encode writes m as a HEF document. Part names are tabled in the order
// they first appear in m.Slats, and records follow slat order.
func (m *Model[P, Q]) Encode(w io.Writer) error {
	if strings.ContainsAny(m.Name, "\r\n") {
		return newError(0, ErrMalformedHeader, "model name contains a line break")
	}

	docs := make([][]byte, 0, 3)
	for _, d := range []struct {
		what string
		v    any
	}{
		{"parameters", &m.Parameters},
		{"variant", &m.Variant},
		{"properties", &m.Properties},
	} {
		line, err := json.Marshal(d.v)
		if err != nil {
			return newError(0, ErrInvalidDocument, "%s: %w", d.what, err)
		}
		docs = append(docs, line)
	}

	parts := m.Parts()
	index := make(map[string]int, len(parts))
	for i, name := range parts {
		if strings.ContainsAny(name, "\r\n") {
			return newError(0, ErrMalformedRecord, "part name %q contains a line break", name)
		}
		if looksLikeRecord(strings.Fields(name)) {
			return newError(0, ErrMalformedRecord, "part name %q reads as a slat record", name)
		}
		index[name] = i
	}

	bw := bufio.NewWriter(w)
	for _, line := range magicLines {
		writeLine(bw, line)
	}
	writeLine(bw, m.Name)
	for _, doc := range docs {
		bw.Write(doc)
		bw.WriteByte('\n')
	}
	writeLine(bw, strconv.Itoa(len(parts)))
	for _, name := range parts {
		writeLine(bw, name)
	}
	for _, s := range m.Slats {
		writeLine(bw, encodeRecord(s, index[s.Name]))
	}

	// bufio.Writer keeps the first write error and reports it here.
	if err := bw.Flush(); err != nil {
		return wrapError(0, ErrIO, err)
	}
	return nil
}

// HEF returns the encoded document as a string.
func (m *Model[P, Q]) HEF() (string, error) {
	var b strings.Builder
	if err := m.Encode(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeLine(w *bufio.Writer, s string) {
	w.WriteString(s)
	w.WriteByte('\n')
}

func encodeRecord(s Slat, partIndex int) string {
	fields := [recordFields]string{
		formatNumber(s.Origin.X),
		formatNumber(s.Origin.Y),
		formatNumber(s.Origin.Z),
		formatNumber(s.Vector.X),
		formatNumber(s.Vector.Y),
		formatNumber(s.Vector.Z),
		strconv.Itoa(s.Layer),
		strconv.Itoa(partIndex),
	}
	return strings.Join(fields[:], " ")
}

// formatNumber never uses an exponent and reads back with ParseFloat to the
// identical value.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
