package hef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlatLength(t *testing.T) {
	t.Run("span plus one unit", func(t *testing.T) {
		s := Slat{Vector: Vector{X: 3}}
		assert.Equal(t, 4.0, s.Length(DefaultVariant()))
	})

	t.Run("unit direction is normalized without the variant", func(t *testing.T) {
		// The span scales to 6 and the unit (1,0,0) scales to 2.
		s := Slat{Vector: Vector{X: 3}}
		assert.Equal(t, 8.0, s.Length(Variant{X: 2, Y: 1, Z: 1}))
	})

	t.Run("off-axis variant does not change an axis slat", func(t *testing.T) {
		s := Slat{Vector: Vector{Y: 2}}
		assert.Equal(t, 3.0, s.Length(Variant{X: 5, Y: 1, Z: 7}))
	})
}

func TestSlatBOMLine(t *testing.T) {
	testCases := []struct {
		name string
		slat Slat
		want string
	}{
		{"integral length", Slat{Name: "A1", Layer: 2, Vector: Vector{X: 3}}, "4 2 A1"},
		{"fractional length", Slat{Name: "rail", Layer: 0, Vector: Vector{Z: 1.5}}, "2.5 0 rail"},
		{"negative layer", Slat{Name: "post", Layer: -1, Vector: Vector{Y: -3}}, "4 -1 post"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.slat.BOMLine(DefaultVariant()))
		})
	}
}

func TestSlatEnd(t *testing.T) {
	s := Slat{Origin: Point{X: 1, Y: 1}, Vector: Vector{Z: 4}}
	assert.Equal(t, Point{X: 1, Y: 1, Z: 4}, s.End())
}

func TestFormatLength(t *testing.T) {
	assert.Equal(t, "4", FormatLength(4))
	assert.Equal(t, "6.5", FormatLength(6.5))
	assert.Equal(t, "0.1", FormatLength(0.1))
	assert.Equal(t, "1000000", FormatLength(1e6))
}
