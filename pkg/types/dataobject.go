package types

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// ElementKind identifies the scalar type a DataObject's dense buffer is
// materialized as.
type ElementKind int

const (
	KindInt32 ElementKind = iota
	KindInt64
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
)

// String renders the kind the way override-type tokens spell it.
func (k ElementKind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// DataObjectBase is the shared, kind-erased surface every typed container
// implements: dims/names/missing/scalar access (§4.D.4, §6), plus a
// buffer-exposure hook host-binding code outside this repository can use
// to wrap the dense array in a host-native type.
type DataObjectBase interface {
	Kind() ElementKind
	Dims() []int
	Len() int
	FieldName() string
	GroupByFieldName() string
	DimPaths() []Query
	IsMissing(i int) bool
	GetAsInt(i int) int64
	// Buffer returns the dense backing storage. Callers that need a typed
	// slice should type-assert on the concrete NumericObject[T]/StringObject
	// type rather than on this method's return value.
	Buffer() any

	setFieldName(string)
	setGroupByFieldName(string)
	setDims([]int)
	setDimPaths([]Query)
}

// Numeric is the set of scalar types a NumericObject can hold. float64 is
// the solver's native representation; the rest are the override-type
// vocabulary from §4.D.4.
type Numeric interface {
	~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// missingMarker returns the sentinel value a typed container reports for
// a cell that was at or beyond the missing threshold. Not specified by
// the original TypeInfo/DataObject pairing beyond "the container's own
// missing marker" (§4.D.4); this repository uses each type's maximum
// representable magnitude for integers and NaN for floats, the
// conventional choice in comparable scientific-array missing-value
// schemes.
func missingMarker[T Numeric]() T {
	var zero T
	switch any(zero).(type) {
	case int32:
		return any(int32(math.MaxInt32)).(T)
	case int64:
		return any(int64(math.MaxInt64)).(T)
	case uint32:
		return any(uint32(math.MaxUint32)).(T)
	case uint64:
		return any(uint64(math.MaxUint64)).(T)
	case float32:
		return any(float32(math.NaN())).(T)
	case float64:
		return any(math.NaN()).(T)
	}
	return zero
}

// NumericObject is the typed dense container for every non-string
// element kind.
type NumericObject[T Numeric] struct {
	kind             ElementKind
	data             []T
	missing          []bool
	dims             []int
	fieldName        string
	groupByFieldName string
	dimPaths         []Query
}

func newNumericObject[T Numeric](kind ElementKind) *NumericObject[T] {
	return &NumericObject[T]{kind: kind}
}

// NewInt32Object constructs an empty int32 container.
func NewInt32Object() *NumericObject[int32] { return newNumericObject[int32](KindInt32) }

// NewInt64Object constructs an empty int64 container.
func NewInt64Object() *NumericObject[int64] { return newNumericObject[int64](KindInt64) }

// NewUint32Object constructs an empty uint32 container.
func NewUint32Object() *NumericObject[uint32] { return newNumericObject[uint32](KindUint32) }

// NewUint64Object constructs an empty uint64 container.
func NewUint64Object() *NumericObject[uint64] { return newNumericObject[uint64](KindUint64) }

// NewFloat32Object constructs an empty float32 container.
func NewFloat32Object() *NumericObject[float32] { return newNumericObject[float32](KindFloat32) }

// NewFloat64Object constructs an empty float64 container.
func NewFloat64Object() *NumericObject[float64] { return newNumericObject[float64](KindFloat64) }

// SetData converts the solver's internal double buffer into this
// container's element type. Any cell whose magnitude is at or above
// missingThreshold is recorded as missing and rewritten to this
// container's own missing marker, per §9's "Value representation of
// strings" note (the threshold never applies to string lanes — those go
// through StringObject.SetData instead).
func (o *NumericObject[T]) SetData(raw []float64, missingThreshold float64) {
	o.data = make([]T, len(raw))
	o.missing = make([]bool, len(raw))
	marker := missingMarker[T]()
	for i, v := range raw {
		if math.Abs(v) >= missingThreshold {
			o.data[i] = marker
			o.missing[i] = true
			continue
		}
		o.data[i] = T(v)
	}
}

func (o *NumericObject[T]) Kind() ElementKind            { return o.kind }
func (o *NumericObject[T]) Dims() []int                   { return o.dims }
func (o *NumericObject[T]) Len() int                      { return len(o.data) }
func (o *NumericObject[T]) FieldName() string             { return o.fieldName }
func (o *NumericObject[T]) GroupByFieldName() string      { return o.groupByFieldName }
func (o *NumericObject[T]) DimPaths() []Query             { return o.dimPaths }
func (o *NumericObject[T]) Buffer() any                   { return o.data }
func (o *NumericObject[T]) IsMissing(i int) bool          { return o.missing[i] }
func (o *NumericObject[T]) GetAsInt(i int) int64          { return int64(o.data[i]) }
func (o *NumericObject[T]) setFieldName(v string)         { o.fieldName = v }
func (o *NumericObject[T]) setGroupByFieldName(v string)  { o.groupByFieldName = v }
func (o *NumericObject[T]) setDims(v []int)               { o.dims = v }
func (o *NumericObject[T]) setDimPaths(v []Query)         { o.dimPaths = v }

// At returns the typed value at index i, for callers that already know
// the concrete element type.
func (o *NumericObject[T]) At(i int) T { return o.data[i] }

// StringObject is the typed dense container for string fields. The
// decoder bit-packs short strings into the same 8-byte lane used for
// doubles (§9); SetData reinterprets those bits back into text rather
// than treating the lane as a float, and — per §9 — never applies the
// numeric missing threshold to a string lane.
type StringObject struct {
	data             []string
	dims             []int
	fieldName        string
	groupByFieldName string
	dimPaths         []Query
}

// NewStringObject constructs an empty string container.
func NewStringObject() *StringObject { return &StringObject{} }

// SetData reinterprets each double-wide lane in raw as 8 packed ASCII
// bytes (big-endian, trailing NUL bytes trimmed), yielding the original
// string cell.
func (o *StringObject) SetData(raw []float64) {
	o.data = make([]string, len(raw))
	for i, v := range raw {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		o.data[i] = strings.TrimRight(string(buf[:]), "\x00")
	}
}

func (o *StringObject) Kind() ElementKind           { return KindString }
func (o *StringObject) Dims() []int                 { return o.dims }
func (o *StringObject) Len() int                    { return len(o.data) }
func (o *StringObject) FieldName() string           { return o.fieldName }
func (o *StringObject) GroupByFieldName() string    { return o.groupByFieldName }
func (o *StringObject) DimPaths() []Query           { return o.dimPaths }
func (o *StringObject) Buffer() any                 { return o.data }
func (o *StringObject) IsMissing(i int) bool        { return false }
func (o *StringObject) GetAsInt(i int) int64 {
	panic(fmt.Sprintf("GetAsInt called on string field %q", o.fieldName))
}
func (o *StringObject) setFieldName(v string)        { o.fieldName = v }
func (o *StringObject) setGroupByFieldName(v string) { o.groupByFieldName = v }
func (o *StringObject) setDims(v []int)              { o.dims = v }
func (o *StringObject) setDimPaths(v []Query)        { o.dimPaths = v }

// At returns the string value at index i.
func (o *StringObject) At(i int) string { return o.data[i] }

// SetCommon populates the shared name/dims/dimPaths attributes common to
// every DataObjectBase implementation, used by resultset.makeDataObject
// after SetData.
func SetCommon(o DataObjectBase, fieldName, groupByFieldName string, dims []int, dimPaths []Query) {
	o.setFieldName(fieldName)
	o.setGroupByFieldName(groupByFieldName)
	o.setDims(dims)
	o.setDimPaths(dimPaths)
}
