package numeric

import (
	"fmt"

	"github.com/Manu343726/mezcla/pkg/utils"
)

// A transient primitive value tagged with its kind. Values carry no
// arithmetic, they only exist so sinks and tables can inspect what a
// routine produced.
type Value struct {
	value interface{}
	kind  Kind
}

func (v *Value) Kind() Kind {
	return v.kind
}

func (v *Value) Int16() int16 {
	return v.value.(int16)
}

func (v *Value) Char() uint16 {
	return v.value.(uint16)
}

func (v *Value) Int32() int32 {
	return v.value.(int32)
}

func (v *Value) Int64() int64 {
	return v.value.(int64)
}

func (v *Value) Float32() float32 {
	return v.value.(float32)
}

func (v *Value) Float64() float64 {
	return v.value.(float64)
}

func (v *Value) String() string {
	return fmt.Sprint(v.value)
}

// Returns the raw bit pattern of the value, zero extended to 64 bits
func (v *Value) Encode() uint64 {
	switch v.kind {
	case Kind_Int16:
		return uint64(utils.BitCast[uint16](v.Int16()))
	case Kind_Char:
		return uint64(v.Char())
	case Kind_Int32:
		return uint64(utils.BitCast[uint32](v.Int32()))
	case Kind_Int64:
		return utils.BitCast[uint64](v.Int64())
	case Kind_Float32:
		return uint64(utils.BitCast[uint32](v.Float32()))
	case Kind_Float64:
		return utils.BitCast[uint64](v.Float64())
	}

	panic("unreachable")
}

// Stores a 16 bits signed integer value
func Int16(value int16) Value {
	return Value{
		value: value,
		kind:  Kind_Int16,
	}
}

// Stores a 16 bits unsigned character value
func Char(value uint16) Value {
	return Value{
		value: value,
		kind:  Kind_Char,
	}
}

// Stores a 32 bits signed integer value
func Int32(value int32) Value {
	return Value{
		value: value,
		kind:  Kind_Int32,
	}
}

// Stores a 64 bits signed integer value
func Int64(value int64) Value {
	return Value{
		value: value,
		kind:  Kind_Int64,
	}
}

// Stores a 32 bits floating point value
func Float32(value float32) Value {
	return Value{
		value: value,
		kind:  Kind_Float32,
	}
}

// Stores a 64 bits floating point value
func Float64(value float64) Value {
	return Value{
		value: value,
		kind:  Kind_Float64,
	}
}
