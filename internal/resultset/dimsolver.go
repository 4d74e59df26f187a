package resultset

import (
	"fmt"

	"github.com/rhoneyager-tomorrow/ioda-converters/pkg/types"
)

// MissingValue is the dense-array sentinel the dimension solver fills
// unpopulated cells with during row inflation (§6: "the reference
// implementation uses a value near 1e11"). It is distinct from
// MissingThreshold, the boundary a typed container export applies (§9):
// every MissingValue cell is, by construction, at or above that
// threshold, but the threshold is what a DataObject checks, not this
// exact constant.
const MissingValue = 10e10

// MissingThreshold is the magnitude at or above which an exported cell is
// treated as missing (§6, §9): "values |x| ≥ 1e10 are treated as missing
// on output."
const MissingThreshold = 1.0e10

// rawValues is the intermediate result of the dimension solver
// (§4.D.2), before it's wrapped in a typed DataObject.
type rawValues struct {
	Data     []float64
	Dims     []int
	DimPaths []types.Query
	Info     types.TypeInfo
}

// getRawValues implements §4.D.2 in full: it resolves the target (and
// optional group-by) field, aggregates per-dimension maxima and type
// metadata across every stored frame, promotes zero-sized dimensions,
// applies the group-by reshape, and inflates every frame's ragged data
// into the resulting dense buffer.
func (rs *ResultSet) getRawValues(fieldName, groupByField string) (rawValues, error) {
	targetFieldIdx, err := rs.frames[0].FieldIndexForNodeNamed(fieldName)
	if err != nil {
		return rawValues{}, err
	}

	groupByActive := groupByField != ""
	var groupByFieldIdx int
	if groupByActive {
		groupByFieldIdx, err = rs.frames[0].FieldIndexForNodeNamed(groupByField)
		if err != nil {
			return rawValues{}, err
		}

		if err := rs.validateGroupByPrefix(targetFieldIdx, groupByFieldIdx); err != nil {
			return rawValues{}, err
		}
	}

	target0, err := rs.frames[0].FieldAtIdx(targetFieldIdx)
	if err != nil {
		return rawValues{}, err
	}

	dimPaths := append([]types.Query(nil), target0.Target.DimPaths...)
	exportDims := append([]int(nil), target0.Target.ExportDimIdxs...)

	var dimsList []int
	groupbyIdx := 0
	totalGroupbyElements := 0
	info := types.ZeroTypeInfo()

	for _, fr := range rs.frames {
		targetField, err := fr.FieldAtIdx(targetFieldIdx)
		if err != nil {
			return rawValues{}, err
		}

		if len(targetField.Target.DimPaths) > 0 && len(dimPaths) < len(targetField.Target.DimPaths) {
			dimPaths = append([]types.Query(nil), targetField.Target.DimPaths...)
			exportDims = append([]int(nil), targetField.Target.ExportDimIdxs...)
		}

		if len(dimsList) < len(targetField.SeqCounts) {
			grown := make([]int, len(targetField.SeqCounts))
			copy(grown, dimsList)
			dimsList = grown
		}

		for lvl, counts := range targetField.SeqCounts {
			if len(counts) == 0 {
				continue
			}
			if m := maxInt(counts); m > dimsList[lvl] {
				dimsList[lvl] = m
			}
		}

		info = types.MergeTypeInfo(info, targetField.Target.TypeInfo)

		if groupByActive {
			groupByFieldData, err := fr.FieldAtIdx(groupByFieldIdx)
			if err != nil {
				return rawValues{}, err
			}

			if d := len(groupByFieldData.SeqCounts); d > groupbyIdx {
				groupbyIdx = d
			}

			if groupbyIdx > len(dimsList) {
				// The group-by field occurs at a deeper repetition level
				// than anything seen in the target field: the output
				// reshapes around the group-by field's own shape.
				if n := len(groupByFieldData.Target.DimPaths); n > 0 {
					dimPaths = []types.Query{groupByFieldData.Target.DimPaths[n-1]}
				} else {
					dimPaths = nil
				}

				elementsForFrame := 1
				for _, counts := range groupByFieldData.SeqCounts {
					if len(counts) == 0 {
						continue
					}
					elementsForFrame *= maxInt(counts)
				}
				if elementsForFrame > totalGroupbyElements {
					totalGroupbyElements = elementsForFrame
				}
			} else {
				dimPaths = nil
				start := len(groupByFieldData.Target.ExportDimIdxs) - 1
				for idx := start; idx >= 0 && idx < len(targetField.Target.DimPaths); idx++ {
					dimPaths = append(dimPaths, targetField.Target.DimPaths[idx])
				}
			}
		}
	}

	// Step 3: promote zero-sized dimensions so every field has at least
	// one cell (a home for the missing sentinel).
	allDims := append([]int(nil), dimsList...)
	for i, d := range allDims {
		if d == 0 {
			allDims[i] = 1
		}
	}
	if len(allDims) == 0 {
		allDims = []int{1}
	}

	// Step 4: apply the group-by reshape.
	var dims []int
	if groupbyIdx > 0 {
		if groupbyIdx > len(dimsList) {
			dims = []int{totalGroupbyElements}
			exportDims = []int{0}
			allDims = append([]int(nil), dims...)
		} else {
			dims = make([]int, len(dimsList)-groupbyIdx+1)
			dims[0] = 1
			for i := 0; i < groupbyIdx; i++ {
				dims[0] *= allDims[i]
			}
			for i := groupbyIdx; i < len(allDims); i++ {
				dims[i-groupbyIdx+1] = allDims[i]
			}

			shifted := make([]int, len(exportDims))
			for i, v := range exportDims {
				shifted[i] = v - (groupbyIdx - 1)
			}

			filtered := make([]int, 0, len(shifted))
			for _, v := range shifted {
				if v >= 0 {
					filtered = append(filtered, v)
				}
			}
			if len(filtered) == 0 || filtered[0] != 0 {
				filtered = append([]int{0}, filtered...)
			}
			exportDims = filtered
		}
	} else {
		dims = allDims
	}

	// Step 5: allocate the flat buffer.
	rowLength := product(dims[1:])
	totalRows := dims[0] * len(rs.frames)

	data := make([]float64, totalRows*rowLength)
	for i := range data {
		data[i] = MissingValue
	}

	// Step 6: inflate each frame's ragged data into the buffer.
	for frameIdx, fr := range rs.frames {
		targetField, err := fr.FieldAtIdx(targetFieldIdx)
		if err != nil {
			return rawValues{}, err
		}
		if len(targetField.Data) == 0 {
			continue
		}

		frameRows := getRowsForField(*targetField, allDims, groupbyIdx)
		dataRowIdx := dims[0] * frameIdx

		for rowIdx, row := range frameRows {
			for colIdx, v := range row {
				// The write offset mirrors the original algorithm's
				// `dataRowIdx*rowLength + rowIdx*row.size() + colIdx`.
				// Some group-by configurations (group-by deeper than any
				// repetition level seen by the target field, combined
				// with a target field whose seqCounts carry more parent
				// entries than the group-by's own value-based element
				// count) can overrun a single frame's write window; we
				// guard the write rather than let it spill into, or past,
				// the next frame's region.
				offset := dataRowIdx*rowLength + rowIdx*len(row) + colIdx
				if offset >= 0 && offset < len(data) {
					data[offset] = v
				}
			}
		}
	}

	// Step 7: final shape.
	dims[0] = totalRows
	dims = projectDims(dims, exportDims)

	return rawValues{Data: data, Dims: dims, DimPaths: dimPaths, Info: info}, nil
}

// projectDims keeps only the axes named by exportDims, in order (§4.D.2
// step 7).
func projectDims(dims []int, exportDims []int) []int {
	out := make([]int, 0, len(exportDims))
	for _, idx := range exportDims {
		if idx >= 0 && idx < len(dims) {
			out = append(out, dims[idx])
		}
	}
	return out
}

// validateGroupByPrefix requires that the target and group-by fields'
// last dim-path agree component-for-component from index 1 onward (i.e.
// ignoring the subset selector at index 0, §4.D.2 step 1 / §9 Open
// Question "intentional... should be preserved").
func (rs *ResultSet) validateGroupByPrefix(targetFieldIdx, groupByFieldIdx int) error {
	target0, err := rs.frames[0].FieldAtIdx(targetFieldIdx)
	if err != nil {
		return err
	}
	groupBy0, err := rs.frames[0].FieldAtIdx(groupByFieldIdx)
	if err != nil {
		return err
	}

	var targetPath, groupByPath types.Query
	if n := len(target0.Target.DimPaths); n > 0 {
		targetPath = target0.Target.DimPaths[n-1]
	}
	if n := len(groupBy0.Target.DimPaths); n > 0 {
		groupByPath = groupBy0.Target.DimPaths[n-1]
	}

	n := len(targetPath.Components)
	if len(groupByPath.Components) < n {
		n = len(groupByPath.Components)
	}
	for i := 0; i < n; i++ {
		if targetPath.Components[i] != groupByPath.Components[i] {
			return fmt.Errorf("%w: target path %q vs group-by path %q",
				ErrBadGroupByPath, targetPath.String(), groupByPath.String())
		}
	}
	return nil
}
