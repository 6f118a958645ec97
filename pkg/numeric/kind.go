// Package numeric describes the primitive numeric kinds exercised by the
// demonstration routines and the conversion rules between them.
package numeric

import (
	"errors"
	"reflect"

	"github.com/Manu343726/mezcla/pkg/utils"
)

// Represents the kind of a primitive numeric value
type Kind uint

const (
	Kind_Int16 Kind = iota
	Kind_Char
	Kind_Int32
	Kind_Int64
	Kind_Float32
	Kind_Float64
)

var ErrUnknownKind = errors.New("unknown numeric kind")

func (k Kind) String() string {
	switch k {
	case Kind_Int16:
		return "Int16"
	case Kind_Char:
		return "Char"
	case Kind_Int32:
		return "Int32"
	case Kind_Int64:
		return "Int64"
	case Kind_Float32:
		return "Float32"
	case Kind_Float64:
		return "Float64"
	}

	panic("unreachable")
}

func (k Kind) IsInteger() bool {
	switch k {
	case Kind_Int16, Kind_Char, Kind_Int32, Kind_Int64:
		return true
	}

	return false
}

func (k Kind) IsFloat() bool {
	return !k.IsInteger()
}

func (k Kind) IsSigned() bool {
	switch k {
	case Kind_Int16, Kind_Int32, Kind_Int64, Kind_Float32, Kind_Float64:
		return true
	}

	return false
}

func (k Kind) Bits() int {
	switch k {
	case Kind_Int16:
		return utils.SizeofBits[int16]()
	case Kind_Char:
		return utils.SizeofBits[uint16]()
	case Kind_Int32:
		return utils.SizeofBits[int32]()
	case Kind_Int64:
		return utils.SizeofBits[int64]()
	case Kind_Float32:
		return utils.SizeofBits[float32]()
	case Kind_Float64:
		return utils.SizeofBits[float64]()
	}

	panic("unreachable")
}

// Returns the golang equivalent of the kind
func (k Kind) GoType() reflect.Type {
	switch k {
	case Kind_Int16:
		return reflect.TypeFor[int16]()
	case Kind_Char:
		return reflect.TypeFor[uint16]()
	case Kind_Int32:
		return reflect.TypeFor[int32]()
	case Kind_Int64:
		return reflect.TypeFor[int64]()
	case Kind_Float32:
		return reflect.TypeFor[float32]()
	case Kind_Float64:
		return reflect.TypeFor[float64]()
	}

	panic("unreachable")
}

// All the kinds, integral kinds first
func Kinds() []Kind {
	return []Kind{Kind_Int16, Kind_Char, Kind_Int32, Kind_Int64, Kind_Float32, Kind_Float64}
}

// Parses a kind from its String() representation
func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds() {
		if kind.String() == name {
			return kind, nil
		}
	}

	return Kind(0), utils.MakeError(ErrUnknownKind, "'%v'", name)
}
