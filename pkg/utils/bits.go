package utils

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

const BitsPerByte = 8

// Returns the size in bits of n bytes
func Bits(bytes int) int {
	return bytes * BitsPerByte
}

// Returns the size in bytes of values of a type
func Sizeof[T any]() int {
	var val T
	return int(unsafe.Sizeof(val))
}

// Returns the size in bits of values of a type
func SizeofBits[T any]() int {
	return Bits(Sizeof[T]())
}

// Reinterprets the bits of a numeric value as an unsigned integer of the
// same size. Panics if the sizes do not match.
func BitCast[To constraints.Unsigned, From Number](value From) To {
	if Sizeof[To]() != Sizeof[From]() {
		panic("bit cast between types of different sizes")
	}

	return *(*To)(unsafe.Pointer(&value))
}
