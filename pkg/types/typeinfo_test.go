package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeInfoPredicates(t *testing.T) {
	str := TypeInfo{Unit: stringUnit}
	assert.True(t, str.IsString())
	assert.False(t, str.IsInteger())

	signedInt := TypeInfo{Reference: -1000, Scale: 0, Bits: 16}
	assert.True(t, signedInt.IsInteger())
	assert.True(t, signedInt.IsSigned())
	assert.False(t, signedInt.Is64Bit())

	unsigned64 := TypeInfo{Reference: 0, Scale: 0, Bits: 40}
	assert.True(t, unsigned64.IsInteger())
	assert.False(t, unsigned64.IsSigned())
	assert.True(t, unsigned64.Is64Bit())

	scaled := TypeInfo{Reference: 0, Scale: 3, Bits: 16}
	assert.False(t, scaled.IsInteger())
}

func TestMergeTypeInfoKeepsNarrowestReference(t *testing.T) {
	acc := ZeroTypeInfo()
	acc = MergeTypeInfo(acc, TypeInfo{Reference: -100, Bits: 16, Scale: 0, Unit: "K"})
	merged := MergeTypeInfo(acc, TypeInfo{Reference: 50, Bits: 16, Scale: 0, Unit: "K"})

	// The merge keeps the minimum reference seen across frames: -100 stays
	// even though a later frame reports the larger 50 (§9 Open Question).
	assert.Equal(t, int64(-100), merged.Reference)
}

func TestMergeTypeInfoWidensBitsAndScale(t *testing.T) {
	acc := TypeInfo{Bits: 8, Scale: 1, Unit: "m"}
	next := TypeInfo{Bits: 16, Scale: 3, Unit: "m"}
	merged := MergeTypeInfo(acc, next)

	assert.Equal(t, uint32(16), merged.Bits)
	assert.Equal(t, int32(3), merged.Scale)
}

func TestMergeTypeInfoScaleAsymmetricQuirk(t *testing.T) {
	acc := TypeInfo{Scale: -5, Unit: "K"}
	next := TypeInfo{Scale: 3, Unit: "K"}
	merged := MergeTypeInfo(acc, next)

	// abs(next.Scale)=3 compares against the accumulator's raw signed
	// value (-5), not its magnitude (5): 3 > -5 so next replaces the
	// accumulator even though |3| < |-5|. A symmetric by-magnitude
	// comparison would keep -5 here; that would be wrong (§9).
	assert.Equal(t, int32(3), merged.Scale)
}

func TestZeroTypeInfo(t *testing.T) {
	z := ZeroTypeInfo()
	assert.Equal(t, uint32(0), z.Bits)
	// Reference starts at MaxInt64 so the first real merge always wins
	// the running minimum.
	assert.Equal(t, int64(9223372036854775807), z.Reference)
}
