package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumericObjectSetDataAppliesMissingThreshold(t *testing.T) {
	obj := NewInt32Object()
	obj.SetData([]float64{1, 2, 1.1e11, -1.1e11, 4}, 1.0e10)

	assert.Equal(t, 5, obj.Len())
	assert.Equal(t, int32(1), obj.At(0))
	assert.False(t, obj.IsMissing(0))
	assert.True(t, obj.IsMissing(2))
	assert.True(t, obj.IsMissing(3))
	assert.Equal(t, int32(math.MaxInt32), obj.At(2))
}

func TestNumericObjectFloatMissingIsNaN(t *testing.T) {
	obj := NewFloat64Object()
	obj.SetData([]float64{3.5, 1.1e11}, 1.0e10)

	assert.False(t, obj.IsMissing(0))
	assert.True(t, obj.IsMissing(1))
	assert.True(t, math.IsNaN(obj.At(1)))
}

func TestNumericObjectAt(t *testing.T) {
	obj := NewUint64Object()
	obj.SetData([]float64{10, 20, 30}, 1.0e10)
	assert.Equal(t, uint64(20), obj.At(1))
	assert.Equal(t, int64(20), obj.GetAsInt(1))
}

func TestStringObjectRoundTrip(t *testing.T) {
	// Pack "ABCD" into the high 4 bytes of a big-endian 8-byte lane, the
	// way the decoder bit-packs short strings into a double-wide slot.
	var buf [8]byte
	copy(buf[:4], []byte("ABCD"))
	lane := math.Float64frombits(bytesToUint64(buf))

	obj := NewStringObject()
	obj.SetData([]float64{lane})

	assert.Equal(t, "ABCD", obj.At(0))
	assert.False(t, obj.IsMissing(0))
}

func TestStringObjectNeverAppliesMissingThreshold(t *testing.T) {
	// Even a lane whose bit pattern happens to decode to a float magnitude
	// above MissingThreshold must not be treated as missing for strings.
	obj := NewStringObject()
	obj.SetData([]float64{1.1e11})
	assert.False(t, obj.IsMissing(0))
}

func TestSetCommon(t *testing.T) {
	obj := NewFloat32Object()
	obj.SetData([]float64{1, 2}, 1.0e10)
	SetCommon(obj, "temperature", "station", []int{2}, []Query{{Components: []string{"temperature"}}})

	assert.Equal(t, "temperature", obj.FieldName())
	assert.Equal(t, "station", obj.GroupByFieldName())
	assert.Equal(t, []int{2}, obj.Dims())
	assert.Len(t, obj.DimPaths(), 1)
}

func bytesToUint64(b [8]byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v
}
