package query

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jo/hyperwood/hef"
	"github.com/jo/hyperwood/internal/document"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

var functions = map[string]function.Function{
	"abs":      stdlib.AbsoluteFunc,
	"ceil":     stdlib.CeilFunc,
	"concat":   stdlib.ConcatFunc,
	"distinct": stdlib.DistinctFunc,
	"floor":    stdlib.FloorFunc,
	"format":   stdlib.FormatFunc,
	"join":     stdlib.JoinFunc,
	"keys":     stdlib.KeysFunc,
	"length":   stdlib.LengthFunc,
	"lower":    stdlib.LowerFunc,
	"max":      stdlib.MaxFunc,
	"min":      stdlib.MinFunc,
	"sort":     stdlib.SortFunc,
	"upper":    stdlib.UpperFunc,
}

var xyzType = cty.Object(map[string]cty.Type{
	"x": cty.Number,
	"y": cty.Number,
	"z": cty.Number,
})

var slatType = cty.Object(map[string]cty.Type{
	"name":   cty.String,
	"layer":  cty.Number,
	"length": cty.Number,
	"origin": xyzType,
	"vector": xyzType,
	"end":    xyzType,
})

// Variables builds the expression scope for m. Lengths use m.Variant.
func Variables[P, Q any](m *hef.Model[P, Q]) (map[string]cty.Value, error) {
	params, err := payloadValue(m.Parameters)
	if err != nil {
		return nil, fmt.Errorf("parameters: %w", err)
	}
	props, err := payloadValue(m.Properties)
	if err != nil {
		return nil, fmt.Errorf("properties: %w", err)
	}

	parts := cty.ListValEmpty(cty.String)
	if names := m.Parts(); len(names) > 0 {
		vals := make([]cty.Value, len(names))
		for i, n := range names {
			vals[i] = cty.StringVal(n)
		}
		parts = cty.ListVal(vals)
	}

	slats := cty.ListValEmpty(slatType)
	if len(m.Slats) > 0 {
		vals := make([]cty.Value, len(m.Slats))
		for i, s := range m.Slats {
			vals[i] = slatValue(s, m.Variant)
		}
		slats = cty.ListVal(vals)
	}

	return map[string]cty.Value{
		"name":         cty.StringVal(m.Name),
		"parameters":   params,
		"properties":   props,
		"variant":      xyzValue(m.Variant.X, m.Variant.Y, m.Variant.Z),
		"parts":        parts,
		"slats":        slats,
		"length_total": numberValue(m.LengthTotal()),
	}, nil
}

// payloadValue converts an arbitrary payload through its JSON form.
func payloadValue(v any) (cty.Value, error) {
	if d, ok := v.(document.Document); ok {
		return d.Value(), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return cty.NilVal, err
	}
	d, err := document.Parse(b)
	if err != nil {
		return cty.NilVal, err
	}
	return d.Value(), nil
}

func slatValue(s hef.Slat, variant hef.Variant) cty.Value {
	end := s.End()
	return cty.ObjectVal(map[string]cty.Value{
		"name":   cty.StringVal(s.Name),
		"layer":  cty.NumberIntVal(int64(s.Layer)),
		"length": numberValue(s.Length(variant)),
		"origin": xyzValue(s.Origin.X, s.Origin.Y, s.Origin.Z),
		"vector": xyzValue(s.Vector.X, s.Vector.Y, s.Vector.Z),
		"end":    xyzValue(end.X, end.Y, end.Z),
	})
}

func xyzValue(x, y, z float64) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"x": numberValue(x),
		"y": numberValue(y),
		"z": numberValue(z),
	})
}

// numberValue maps NaN, which a zero-length slat produces, to null.
func numberValue(f float64) cty.Value {
	if math.IsNaN(f) {
		return cty.NullVal(cty.Number)
	}
	return cty.NumberFloatVal(f)
}
