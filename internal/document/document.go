// Package document provides Document, a schema-less metadata payload for
// HEF models. It holds any JSON value as a cty.Value so that the same data
// can be printed, converted to YAML, or fed to HCL expressions.
package document

import (
	"bytes"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

var jsonNull = []byte("null")

// Document is an opaque JSON document. The zero value is an empty object.
type Document struct {
	val cty.Value
}

// FromValue wraps an existing value.
func FromValue(v cty.Value) Document {
	return Document{val: v}
}

// Parse decodes a single JSON value.
func Parse(b []byte) (Document, error) {
	var d Document
	if err := d.UnmarshalJSON(b); err != nil {
		return Document{}, err
	}
	return d, nil
}

// Value returns the wrapped value, or an empty object for the zero Document.
func (d Document) Value() cty.Value {
	if d.val == cty.NilVal {
		return cty.EmptyObjectVal
	}
	return d.val
}

// MarshalJSON implements json.Marshaler. Object keys come out sorted.
func (d Document) MarshalJSON() ([]byte, error) {
	v := d.Value()
	if v.IsNull() {
		return jsonNull, nil
	}
	b, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return b, nil
}

// UnmarshalJSON implements json.Unmarshaler. The value's type is implied
// from the JSON itself.
func (d *Document) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), jsonNull) {
		d.val = cty.NullVal(cty.DynamicPseudoType)
		return nil
	}
	ty, err := ctyjson.ImpliedType(b)
	if err != nil {
		return fmt.Errorf("infer document type: %w", err)
	}
	v, err := ctyjson.Unmarshal(b, ty)
	if err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}
	d.val = v
	return nil
}

// JSON renders the document on a single line.
func (d Document) JSON() (string, error) {
	b, err := d.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Equal reports whether both documents hold the same value.
func (d Document) Equal(o Document) bool {
	return d.Value().RawEquals(o.Value())
}
