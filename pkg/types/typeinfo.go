// Package types holds the value types shared across the query, frame, and
// resultset packages: TypeInfo (decoded field metadata) and the typed
// DataObject container the resultset hands back to callers.
package types

import "math"

// TypeInfo carries the numeric metadata a decoder attaches to a field:
// the integer reference value, the bit width used to store it, the
// (possibly negative) power-of-ten scale factor, and the physical unit.
//
// A unit of "CCITT IA5" marks a string field: the decoder bit-packs ASCII
// bytes into the same double-wide lane used for numeric values, and the
// string predicate below is what tells the resultset to reinterpret those
// bits rather than treat them as a float.
type TypeInfo struct {
	Reference int64
	Bits      uint32
	Scale     int32
	Unit      string
}

// stringUnit is the BUFR convention for character data: a CCITT IA5
// (7-bit ASCII) field. Decoders pack the text into the same 8-byte lane
// used for doubles; see StringObject.SetData for the reinterpretation.
const stringUnit = "CCITT IA5"

// IsString reports whether this field carries bit-packed character data
// rather than a numeric value.
func (t TypeInfo) IsString() bool {
	return t.Unit == stringUnit
}

// IsInteger reports whether the field's decoded value is a whole number,
// i.e. it is not a string field and carries no power-of-ten scaling.
func (t TypeInfo) IsInteger() bool {
	return t.Scale == 0 && !t.IsString()
}

// IsSigned reports whether the field's value range extends below zero.
// BUFR descriptors encode this as a negative reference value (the field's
// minimum representable value before applying scale).
func (t TypeInfo) IsSigned() bool {
	return t.Reference < 0
}

// Is64Bit reports whether the field needs more than 32 bits to represent
// without loss.
func (t TypeInfo) Is64Bit() bool {
	return t.Bits > 32
}

// MergeTypeInfo combines TypeInfo from two frames describing the same
// field. The combination rule is element-wise: the narrowest (minimum)
// reference, the widest (maximum) bit count, and the first non-empty
// unit encountered.
//
// The scale merge is intentionally asymmetric: it replaces the
// accumulator whenever the incoming value's magnitude exceeds the
// accumulator's raw (signed) value, not the accumulator's own
// magnitude. Once the accumulator has gone negative, almost any
// subsequent scale satisfies that comparison and replaces it — this
// mirrors the original comparison exactly and must not be "fixed" into
// a symmetric by-magnitude comparison.
func MergeTypeInfo(acc, next TypeInfo) TypeInfo {
	merged := acc

	if next.Reference < merged.Reference {
		merged.Reference = next.Reference
	}

	if next.Bits > merged.Bits {
		merged.Bits = next.Bits
	}

	if math.Abs(float64(next.Scale)) > float64(merged.Scale) {
		merged.Scale = next.Scale
	}

	if merged.Unit == "" {
		merged.Unit = next.Unit
	}

	return merged
}

// ZeroTypeInfo returns the identity element for MergeTypeInfo: a reference
// of MaxInt64 so the first real merge always wins the min, and zero
// elsewhere.
func ZeroTypeInfo() TypeInfo {
	return TypeInfo{Reference: math.MaxInt64}
}
