// Package demo implements the mixed-kind arithmetic demonstration: four
// straight-line routines, each operating on two primitive values of
// different numeric kinds and forwarding the result to the sink operation
// matching the promoted result kind.
package demo

import (
	"github.com/Manu343726/mezcla/pkg/numeric"
)

// A Sink consumes one primitive numeric result for observable effect.
// There is one operation per result kind the routines can produce; the
// caller picks the operation statically from its result kind.
type Sink interface {
	PrintInt32(value int32)
	PrintInt64(value int64)
	PrintFloat32(value float32)
	PrintFloat64(value float64)
}

// Adds a 16 bit signed value and a 16 bit character value. Both operands
// are promoted to int32 for the addition and the sum is narrowed back to
// 16 bits, wrapping around on overflow. There is no 16 bit sink
// operation, so the narrowed result is widened into the Int32 sink.
func ShortAndCharMath(s int16, c uint16, out Sink) {
	sum := numeric.NarrowInt16(int32(s) + int32(c))
	out.PrintInt32(int32(sum))
}

// Adds a 32 bit integer and a 32 bit float. The integer operand is
// promoted to float32.
func FloatAndIntMath(i int32, f float32, out Sink) {
	out.PrintFloat32(float32(i) + f)
}

// Subtracts a 32 bit integer from a 64 bit integer. The 32 bit operand
// is promoted to int64.
func LongMath(i int32, l int64, out Sink) {
	out.PrintInt64(l - int64(i))
}

// Adds a 32 bit integer and a 64 bit float. The integer operand is
// promoted to float64.
func DoubleMath(i int32, d float64, out Sink) {
	out.PrintFloat64(float64(i) + d)
}

// Runs the four demonstration routines in fixed order with their fixed
// literal inputs. The sequence is fully deterministic: same four sink
// calls, same values, every run.
func Run(out Sink) {
	ShortAndCharMath(1, 2, out)
	FloatAndIntMath(1, 2.45, out)
	LongMath(1, 3, out)
	DoubleMath(1, 3.45, out)
}
