// Package frame implements the DataFrame/DataField read surface (§3,
// §4.C) the ResultSet accumulates and later flattens, and defines the
// Decoder collaborator contract (§6) external decoders must satisfy to
// populate one.
package frame

import "github.com/rhoneyager-tomorrow/ioda-converters/pkg/types"

// TargetDescriptor is the per-field export metadata a decoder attaches to
// a DataField: which dimensions it exports and under what name/type/unit
// (§3).
type TargetDescriptor struct {
	// DimPaths is the ordered list of Query-valued path tags, one per
	// exported dimension.
	DimPaths []types.Query

	// ExportDimIdxs indexes into the field's full dimension list,
	// selecting which dims survive to the final output shape.
	ExportDimIdxs []int

	TypeInfo types.TypeInfo
	Unit     string
}

// DataField is one field's view inside a single decoded DataFrame: a
// flat value vector, the ragged per-level repetition structure that
// produced it, and the target descriptor describing how it should be
// shaped and typed on export (§3).
type DataField struct {
	// Data is the flat sequence of decoded scalar values, encoded as
	// double; string payloads are bit-packed into the same numeric width
	// by the decoder (§3, §9).
	Data []float64

	// SeqCounts has one entry per repetition level; entry r is the
	// vector of child counts observed at level r of the ragged tree.
	SeqCounts [][]int

	Target *TargetDescriptor
}
