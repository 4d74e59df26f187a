// Package resultset implements the ResultSet (§4.D): it accumulates
// decoded DataFrames and, on demand, flattens a chosen target field
// (optionally re-binned under a group-by field) into a dense array of
// resolved shape, boxed in a polymorphic typed container (§3, §4.D.4).
package resultset

import (
	"fmt"

	"github.com/rhoneyager-tomorrow/ioda-converters/internal/frame"
	"github.com/rhoneyager-tomorrow/ioda-converters/pkg/types"
	"github.com/rs/zerolog"
)

// ResultSet holds the names shared by every frame and the growing list
// of frames themselves. Frames are appended only; once the decoder has
// populated a frame returned by NextDataFrame, it is never mutated (§3).
// The ResultSet is
// single-producer (the decoder, during the build phase) then read-only
// (the consumer calling Get/Unit, during the read phase); the two phases
// must not interleave concurrently (§5).
type ResultSet struct {
	names  []string
	frames []*frame.DataFrame
	logger zerolog.Logger

	// missingThreshold overrides MissingThreshold when non-zero (§4.F,
	// §9). Zero means "use the package default".
	missingThreshold float64
}

// New constructs an empty ResultSet for the given field names, in the
// order they will appear in every DataFrame.
func New(names []string) *ResultSet {
	return &ResultSet{names: names, logger: zerolog.Nop()}
}

// NewWithLogger is New, but with a trace logger that records a debug line
// for every appended frame and the resolved dims of every Get (§4.G). The
// logger never influences solver output — it is purely observational.
func NewWithLogger(names []string, logger zerolog.Logger) *ResultSet {
	rs := New(names)
	rs.logger = logger.With().Str("component", "resultset").Logger()
	return rs
}

// SetMissingThreshold overrides MissingThreshold (§4.F, §9) — the
// magnitude at or above which an exported numeric cell is treated as
// missing — for every subsequent Get call on this ResultSet. A zero
// value restores the package default.
func (rs *ResultSet) SetMissingThreshold(threshold float64) {
	rs.missingThreshold = threshold
}

func (rs *ResultSet) effectiveMissingThreshold() float64 {
	if rs.missingThreshold != 0 {
		return rs.missingThreshold
	}
	return MissingThreshold
}

// NextDataFrame appends a new empty frame with slots for all names and
// returns it for the decoder collaborator to populate (§4.D.1).
func (rs *ResultSet) NextDataFrame() *frame.DataFrame {
	f := frame.NewDataFrame(rs.names)
	rs.frames = append(rs.frames, f)
	rs.logger.Debug().Int("frame_count", len(rs.frames)).Msg("appended data frame")
	return f
}

// Get produces a typed dense array for fieldName, optionally re-binned
// under groupByFieldName, optionally boxed as overrideType rather than
// the type TypeInfo would otherwise select (§4.D.1).
func (rs *ResultSet) Get(fieldName, groupByFieldName, overrideType string) (types.DataObjectBase, error) {
	if len(rs.frames) == 0 {
		return nil, ErrEmptyResultSet
	}

	if !rs.frames[0].HasFieldNamed(fieldName) {
		return nil, fmt.Errorf("%w: %q", frame.ErrUnknownField, fieldName)
	}
	if groupByFieldName != "" && !rs.frames[0].HasFieldNamed(groupByFieldName) {
		return nil, fmt.Errorf("%w: %q", frame.ErrUnknownField, groupByFieldName)
	}

	raw, err := rs.getRawValues(fieldName, groupByFieldName)
	if err != nil {
		return nil, err
	}

	rs.logger.Debug().
		Str("field", fieldName).
		Str("group_by", groupByFieldName).
		Ints("dims", raw.Dims).
		Msg("resolved dims")

	return makeDataObject(fieldName, groupByFieldName, raw, overrideType, rs.effectiveMissingThreshold())
}

// Unit returns the unit attached to fieldName's target descriptor, read
// from the first frame (§4.D.1).
func (rs *ResultSet) Unit(fieldName string) (string, error) {
	if len(rs.frames) == 0 {
		return "", ErrEmptyResultSet
	}
	idx, err := rs.frames[0].FieldIndexForNodeNamed(fieldName)
	if err != nil {
		return "", err
	}
	field, err := rs.frames[0].FieldAtIdx(idx)
	if err != nil {
		return "", err
	}
	return field.Target.Unit, nil
}

// FrameCount reports how many frames have been accumulated so far.
func (rs *ResultSet) FrameCount() int {
	return len(rs.frames)
}
