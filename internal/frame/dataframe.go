package frame

import "fmt"

// DataFrame is one decoded record presented as an indexable bag of
// DataFields, in the fixed order of the owning ResultSet's names (§3).
// It is built once by the decoder collaborator and treated as read-only
// by the ResultSet from then on (§5).
type DataFrame struct {
	names  []string
	fields []DataField
}

// NewDataFrame allocates an empty frame with one (zero-valued) slot per
// name, ready for the decoder collaborator to populate via SetField.
func NewDataFrame(names []string) *DataFrame {
	return &DataFrame{
		names:  names,
		fields: make([]DataField, len(names)),
	}
}

// SetField populates the slot at idx. idx is bounds-checked against the
// frame's fixed name list.
func (f *DataFrame) SetField(idx int, field DataField) error {
	if idx < 0 || idx >= len(f.fields) {
		return fmt.Errorf("bufrquery: field index %d out of range [0,%d)", idx, len(f.fields))
	}
	f.fields[idx] = field
	return nil
}

// HasFieldNamed reports whether name is one of this frame's fields.
func (f *DataFrame) HasFieldNamed(name string) bool {
	for _, n := range f.names {
		if n == name {
			return true
		}
	}
	return false
}

// FieldIndexForNodeNamed resolves name to its index via an exact match,
// or ErrUnknownField if absent (§4.C).
func (f *DataFrame) FieldIndexForNodeNamed(name string) (int, error) {
	for i, n := range f.names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// FieldAtIdx returns the field at idx, bounds-checked.
func (f *DataFrame) FieldAtIdx(idx int) (*DataField, error) {
	if idx < 0 || idx >= len(f.fields) {
		return nil, fmt.Errorf("bufrquery: field index %d out of range [0,%d)", idx, len(f.fields))
	}
	return &f.fields[idx], nil
}

// Len returns the number of field slots in this frame (equal to the
// owning ResultSet's name count).
func (f *DataFrame) Len() int {
	return len(f.fields)
}
