package resultset

import "github.com/rhoneyager-tomorrow/ioda-converters/internal/frame"

// getRowsForField is the algorithmic heart of the resultset package
// (§4.D.3): given one field's ragged data and the solver's per-level
// dimension maxima, it computes the index shift needed to open a hole in
// the data for every missing child, scatters the flat data into those
// holes, and finally slices the result into rows according to the
// group-by depth.
func getRowsForField(field frame.DataField, dims []int, groupbyIdx int) [][]float64 {
	maxCounts := 0
	for _, counts := range field.SeqCounts {
		if len(counts) > maxCounts {
			maxCounts = len(counts)
		}
	}

	idxs := make([]int, len(field.Data))
	for i := range idxs {
		idxs[i] = i
	}

	// inserts[r] holds, for every parent at repetition level r, how many
	// padding cells that parent is short of a full row (§4.D.3 step 3).
	// Levels beyond the ragged data default to a single zero (no insert).
	inserts := make([][]int, len(dims))
	for r := range inserts {
		inserts[r] = []int{0}
	}
	for r := 0; r < len(dims) && r < len(field.SeqCounts); r++ {
		counts := field.SeqCounts[r]
		full := product(dims[r:])
		tail := product(dims[r+1:])
		perParent := make([]int, len(counts))
		for p, c := range counts {
			perParent[p] = full - c*tail
		}
		inserts[r] = perParent
	}

	// Walk levels deepest to shallowest, opening a hole of k cells at the
	// position each short parent lacks, without moving already-placed data
	// (§4.D.3 step 4).
	for r := len(dims) - 1; r >= 0; r-- {
		full := product(dims[r:])
		for parentIdx, k := range inserts[r] {
			if k <= 0 {
				continue
			}
			anchor := full*parentIdx + full - k - 1
			for i := range idxs {
				if idxs[i] > anchor {
					idxs[i] += k
				}
			}
		}
	}

	total := product(dims)
	output := make([]float64, total)
	for i := range output {
		output[i] = MissingValue
	}
	for i, idx := range idxs {
		if idx >= 0 && idx < len(output) {
			output[idx] = field.Data[i]
		}
	}

	switch {
	case groupbyIdx <= 0:
		return [][]float64{output}

	case groupbyIdx > len(field.SeqCounts):
		numRows := product(dims)
		rows := make([][]float64, numRows*maxCounts)
		for i := range rows {
			rows[i] = []float64{MissingValue}
		}
		for i := range rows {
			if len(output) > 0 {
				rows[i][0] = output[0]
			}
		}
		return rows

	default:
		numRows := product(dims[:groupbyIdx])
		numsPerRow := product(dims[groupbyIdx:])
		rows := make([][]float64, numRows)
		for i := range rows {
			row := make([]float64, numsPerRow)
			for j := 0; j < numsPerRow; j++ {
				srcIdx := i*numsPerRow + j
				if srcIdx < len(output) {
					row[j] = output[srcIdx]
				} else {
					row[j] = MissingValue
				}
			}
			rows[i] = row
		}
		return rows
	}
}
