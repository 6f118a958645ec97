package numeric

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromote(t *testing.T) {
	cases := []struct {
		a, b     Kind
		expected Kind
	}{
		// The four pairings exercised by the demonstration routines
		{Kind_Int16, Kind_Char, Kind_Int32},
		{Kind_Int32, Kind_Float32, Kind_Float32},
		{Kind_Int32, Kind_Int64, Kind_Int64},
		{Kind_Int32, Kind_Float64, Kind_Float64},

		{Kind_Int16, Kind_Int16, Kind_Int32},
		{Kind_Char, Kind_Char, Kind_Int32},
		{Kind_Int32, Kind_Int32, Kind_Int32},
		{Kind_Int64, Kind_Int64, Kind_Int64},
		{Kind_Int16, Kind_Int64, Kind_Int64},
		{Kind_Char, Kind_Float32, Kind_Float32},
		{Kind_Int64, Kind_Float32, Kind_Float32},
		{Kind_Int64, Kind_Float64, Kind_Float64},
		{Kind_Float32, Kind_Float32, Kind_Float32},
		{Kind_Float32, Kind_Float64, Kind_Float64},
		{Kind_Float64, Kind_Float64, Kind_Float64},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%v+%v", c.a, c.b), func(t *testing.T) {
			assert.Equal(t, c.expected, Promote(c.a, c.b))
		})
	}
}

func TestPromote_Commutative(t *testing.T) {
	for _, a := range Kinds() {
		for _, b := range Kinds() {
			assert.Equal(t, Promote(a, b), Promote(b, a), "Promote(%v, %v)", a, b)
		}
	}
}

func TestPromote_NeverNarrows(t *testing.T) {
	for _, a := range Kinds() {
		for _, b := range Kinds() {
			result := Promote(a, b)
			assert.GreaterOrEqual(t, result.Bits(), 32, "Promote(%v, %v)", a, b)
			if a.IsFloat() || b.IsFloat() {
				assert.True(t, result.IsFloat(), "Promote(%v, %v)", a, b)
			}
		}
	}
}

func TestNarrowInt16(t *testing.T) {
	t.Run("in range values pass through", func(t *testing.T) {
		assert.Equal(t, int16(3), NarrowInt16(3))
		assert.Equal(t, int16(-3), NarrowInt16(-3))
		assert.Equal(t, int16(32767), NarrowInt16(32767))
		assert.Equal(t, int16(-32768), NarrowInt16(-32768))
	})

	t.Run("overflow wraps around", func(t *testing.T) {
		assert.Equal(t, int16(-32768), NarrowInt16(32768))
		assert.Equal(t, int16(32767), NarrowInt16(-32769))
		assert.Equal(t, int16(0), NarrowInt16(65536))
	})
}
