package resultset

import (
	"testing"

	"github.com/rhoneyager-tomorrow/ioda-converters/internal/frame"
	"github.com/rhoneyager-tomorrow/ioda-converters/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalarTargetDescriptor(unit string) *frame.TargetDescriptor {
	return &frame.TargetDescriptor{
		DimPaths:      []types.Query{{Components: []string{"temperature"}}},
		ExportDimIdxs: []int{0},
		TypeInfo:      types.TypeInfo{Reference: 0, Bits: 16, Scale: 1, Unit: unit},
		Unit:          unit,
	}
}

func TestGetOnEmptyResultSet(t *testing.T) {
	rs := New([]string{"temperature"})
	_, err := rs.Get("temperature", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyResultSet)
}

func TestGetUnknownField(t *testing.T) {
	rs := New([]string{"temperature"})
	df := rs.NextDataFrame()
	require.NoError(t, df.SetField(0, frame.DataField{
		Data:      []float64{1},
		SeqCounts: [][]int{{1}},
		Target:    scalarTargetDescriptor("K"),
	}))

	_, err := rs.Get("pressure", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, frame.ErrUnknownField)
}

func TestGetScalarFieldAcrossTwoFrames(t *testing.T) {
	rs := New([]string{"temperature"})

	df1 := rs.NextDataFrame()
	require.NoError(t, df1.SetField(0, frame.DataField{
		Data:      []float64{42},
		SeqCounts: [][]int{{1}},
		Target:    scalarTargetDescriptor("K"),
	}))

	df2 := rs.NextDataFrame()
	require.NoError(t, df2.SetField(0, frame.DataField{
		Data:      []float64{43},
		SeqCounts: [][]int{{1}},
		Target:    scalarTargetDescriptor("K"),
	}))

	obj, err := rs.Get("temperature", "", "")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, obj.Dims())
	assert.Equal(t, 2, obj.Len())

	f32, ok := obj.(*types.NumericObject[float32])
	require.True(t, ok)
	assert.Equal(t, float32(42), f32.At(0))
	assert.Equal(t, float32(43), f32.At(1))
}

func TestGetRaggedTwoDimensionalFieldFillsMissing(t *testing.T) {
	rs := New([]string{"temperature"})
	df := rs.NextDataFrame()
	require.NoError(t, df.SetField(0, frame.DataField{
		Data:      []float64{10, 20, 30},
		SeqCounts: [][]int{{2}, {2, 1}},
		Target: &frame.TargetDescriptor{
			DimPaths:      []types.Query{{Components: []string{"temperature"}}},
			ExportDimIdxs: []int{0, 1},
			TypeInfo:      types.TypeInfo{Reference: 0, Bits: 32, Scale: 1, Unit: "K"},
			Unit:          "K",
		},
	}))

	obj, err := rs.Get("temperature", "", "")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, obj.Dims())

	f32 := obj.(*types.NumericObject[float32])
	nonMissing := 0
	for i := 0; i < f32.Len(); i++ {
		if !f32.IsMissing(i) {
			nonMissing++
		}
	}
	// The dense 2x2 array has one cell unfilled by the ragged 2+1 input;
	// the non-missing cell count must match the original data length.
	assert.Equal(t, 3, nonMissing)
	assert.True(t, f32.IsMissing(3))
}

func TestGetWithTypeOverride(t *testing.T) {
	rs := New([]string{"temperature"})
	df := rs.NextDataFrame()
	require.NoError(t, df.SetField(0, frame.DataField{
		Data:      []float64{42},
		SeqCounts: [][]int{{1}},
		Target:    scalarTargetDescriptor("K"),
	}))

	obj, err := rs.Get("temperature", "", "int32")
	require.NoError(t, err)
	_, ok := obj.(*types.NumericObject[int32])
	assert.True(t, ok)
}

func TestGetWithTypeOverrideCrossingStringBoundaryFails(t *testing.T) {
	rs := New([]string{"temperature"})
	df := rs.NextDataFrame()
	require.NoError(t, df.SetField(0, frame.DataField{
		Data:      []float64{42},
		SeqCounts: [][]int{{1}},
		Target:    scalarTargetDescriptor("K"),
	}))

	_, err := rs.Get("temperature", "", "string")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadConversion)
}

func TestUnitAndFrameCount(t *testing.T) {
	rs := New([]string{"temperature"})
	df := rs.NextDataFrame()
	require.NoError(t, df.SetField(0, frame.DataField{
		Data:      []float64{42},
		SeqCounts: [][]int{{1}},
		Target:    scalarTargetDescriptor("K"),
	}))

	unit, err := rs.Unit("temperature")
	require.NoError(t, err)
	assert.Equal(t, "K", unit)
	assert.Equal(t, 1, rs.FrameCount())
}

func TestSetMissingThresholdOverride(t *testing.T) {
	rs := New([]string{"temperature"})
	df := rs.NextDataFrame()
	require.NoError(t, df.SetField(0, frame.DataField{
		Data:      []float64{5000},
		SeqCounts: [][]int{{1}},
		Target:    scalarTargetDescriptor("K"),
	}))

	rs.SetMissingThreshold(1000)

	obj, err := rs.Get("temperature", "", "")
	require.NoError(t, err)

	f32 := obj.(*types.NumericObject[float32])
	assert.True(t, f32.IsMissing(0))
}

func TestUnitOnEmptyResultSet(t *testing.T) {
	rs := New([]string{"temperature"})
	_, err := rs.Unit("temperature")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyResultSet)
}
