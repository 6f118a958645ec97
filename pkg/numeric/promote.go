package numeric

// Returns the kind an arithmetic operation between two operand kinds
// yields: floating point wins over integral, the wider operand wins over
// the narrower, and 16 bit integral operands are always widened to Int32
// first.
func Promote(a, b Kind) Kind {
	if result := floatingPromotion(a, b); result != nil {
		return *result
	}
	if result := floatingPromotion(b, a); result != nil {
		return *result
	}

	if a == Kind_Int64 || b == Kind_Int64 {
		return Kind_Int64
	}

	// Anything narrower than Int32 is widened to Int32 before the
	// operation, including Int32 with itself.
	return Kind_Int32
}

func floatingPromotion(a, b Kind) *Kind {
	if !a.IsFloat() {
		return nil
	}

	result := a
	if b.IsFloat() && b.Bits() > a.Bits() {
		result = b
	}

	return &result
}

// Narrows a 32 bit integral value back to 16 bits. The value wraps around
// two's complement style, it never saturates.
func NarrowInt16(value int32) int16 {
	return int16(value)
}
