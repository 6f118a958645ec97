package demo

import (
	"testing"

	"github.com/Manu343726/mezcla/pkg/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures every sink call in order for inspection
type recordingSink struct {
	values []numeric.Value
}

func (s *recordingSink) PrintInt32(value int32) {
	s.values = append(s.values, numeric.Int32(value))
}

func (s *recordingSink) PrintInt64(value int64) {
	s.values = append(s.values, numeric.Int64(value))
}

func (s *recordingSink) PrintFloat32(value float32) {
	s.values = append(s.values, numeric.Float32(value))
}

func (s *recordingSink) PrintFloat64(value float64) {
	s.values = append(s.values, numeric.Float64(value))
}

func TestShortAndCharMath(t *testing.T) {
	t.Run("fixed literals", func(t *testing.T) {
		sink := &recordingSink{}
		ShortAndCharMath(1, 2, sink)

		require.Len(t, sink.values, 1)
		assert.Equal(t, numeric.Kind_Int32, sink.values[0].Kind())
		assert.Equal(t, int32(3), sink.values[0].Int32())
	})

	t.Run("sum above int16 range wraps", func(t *testing.T) {
		sink := &recordingSink{}
		ShortAndCharMath(32767, 1, sink)

		require.Len(t, sink.values, 1)
		assert.Equal(t, int32(-32768), sink.values[0].Int32())
	})

	t.Run("negative short plus large char wraps", func(t *testing.T) {
		sink := &recordingSink{}
		ShortAndCharMath(-1, 65535, sink)

		// -1 + 65535 = 65534, low 16 bits are -2
		require.Len(t, sink.values, 1)
		assert.Equal(t, int32(-2), sink.values[0].Int32())
	})
}

func TestFloatAndIntMath(t *testing.T) {
	sink := &recordingSink{}
	FloatAndIntMath(1, 2.45, sink)

	require.Len(t, sink.values, 1)
	assert.Equal(t, numeric.Kind_Float32, sink.values[0].Kind())
	assert.Equal(t, float32(3.45), sink.values[0].Float32())
}

func TestLongMath(t *testing.T) {
	sink := &recordingSink{}
	LongMath(1, 3, sink)

	require.Len(t, sink.values, 1)
	assert.Equal(t, numeric.Kind_Int64, sink.values[0].Kind())
	assert.Equal(t, int64(2), sink.values[0].Int64())
}

func TestDoubleMath(t *testing.T) {
	sink := &recordingSink{}
	DoubleMath(1, 3.45, sink)

	require.Len(t, sink.values, 1)
	assert.Equal(t, numeric.Kind_Float64, sink.values[0].Kind())
	assert.Equal(t, 1+3.45, sink.values[0].Float64())
}

func TestRun(t *testing.T) {
	t.Run("emits the four results in order", func(t *testing.T) {
		sink := &recordingSink{}
		Run(sink)

		require.Len(t, sink.values, 4)

		assert.Equal(t, numeric.Kind_Int32, sink.values[0].Kind())
		assert.Equal(t, int32(3), sink.values[0].Int32())

		assert.Equal(t, numeric.Kind_Float32, sink.values[1].Kind())
		assert.Equal(t, float32(3.45), sink.values[1].Float32())

		assert.Equal(t, numeric.Kind_Int64, sink.values[2].Kind())
		assert.Equal(t, int64(2), sink.values[2].Int64())

		assert.Equal(t, numeric.Kind_Float64, sink.values[3].Kind())
		assert.Equal(t, 1+3.45, sink.values[3].Float64())
	})

	t.Run("is deterministic across runs", func(t *testing.T) {
		first := &recordingSink{}
		second := &recordingSink{}

		Run(first)
		Run(second)

		assert.Equal(t, first.values, second.values)
	})

	t.Run("result kinds follow the promotion rule", func(t *testing.T) {
		// Each routine's sink selection must agree with Promote over its
		// operand kinds, with sub-int32 results widened to the Int32 sink
		sink := &recordingSink{}
		Run(sink)

		require.Len(t, sink.values, 4)
		assert.Equal(t, numeric.Promote(numeric.Kind_Int16, numeric.Kind_Char), sink.values[0].Kind())
		assert.Equal(t, numeric.Promote(numeric.Kind_Int32, numeric.Kind_Float32), sink.values[1].Kind())
		assert.Equal(t, numeric.Promote(numeric.Kind_Int32, numeric.Kind_Int64), sink.values[2].Kind())
		assert.Equal(t, numeric.Promote(numeric.Kind_Int32, numeric.Kind_Float64), sink.values[3].Kind())
	})
}
