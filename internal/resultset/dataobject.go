package resultset

import (
	"fmt"

	"github.com/rhoneyager-tomorrow/ioda-converters/pkg/types"
)

// makeDataObject picks the typed container for the resolved field (by
// TypeInfo, or by overrideType if given), populates it from the solver's
// raw double buffer, and attaches the shared name/dims/dimPaths
// attributes (§4.D.4).
func makeDataObject(fieldName, groupByFieldName string, raw rawValues, overrideType string, missingThreshold float64) (types.DataObjectBase, error) {
	var (
		obj types.DataObjectBase
		err error
	)

	if overrideType == "" {
		obj = objectByTypeInfo(raw.Info)
	} else {
		obj, err = objectByType(overrideType)
		if err != nil {
			return nil, err
		}

		if (overrideType == "string") != raw.Info.IsString() {
			return nil, fmt.Errorf(
				"%w: export definition for %q is %s",
				ErrBadConversion, fieldName, typeWord(raw.Info))
		}
	}

	populate(obj, raw.Data, missingThreshold)
	types.SetCommon(obj, fieldName, groupByFieldName, raw.Dims, raw.DimPaths)

	return obj, nil
}

func typeWord(info types.TypeInfo) string {
	if info.IsString() {
		return "a string field"
	}
	return "a numeric field"
}

// populate type-switches on the concrete container and converts the
// solver's flat double buffer into it, applying missingThreshold to
// every kind except string lanes (§9). missingThreshold is normally
// MissingThreshold, but a ResultSet may override it (§4.F).
func populate(obj types.DataObjectBase, data []float64, missingThreshold float64) {
	switch o := obj.(type) {
	case *types.NumericObject[int32]:
		o.SetData(data, missingThreshold)
	case *types.NumericObject[int64]:
		o.SetData(data, missingThreshold)
	case *types.NumericObject[uint32]:
		o.SetData(data, missingThreshold)
	case *types.NumericObject[uint64]:
		o.SetData(data, missingThreshold)
	case *types.NumericObject[float32]:
		o.SetData(data, missingThreshold)
	case *types.NumericObject[float64]:
		o.SetData(data, missingThreshold)
	case *types.StringObject:
		o.SetData(data)
	}
}

// objectByTypeInfo derives the element kind from TypeInfo per §4.D.4:
// string → string; integer & signed & 64-bit → i64; integer & signed →
// i32; integer & unsigned & 64-bit → u64; integer & unsigned → u32;
// non-integer & 64-bit → f64; non-integer → f32.
func objectByTypeInfo(info types.TypeInfo) types.DataObjectBase {
	switch {
	case info.IsString():
		return types.NewStringObject()
	case info.IsInteger():
		switch {
		case info.IsSigned() && info.Is64Bit():
			return types.NewInt64Object()
		case info.IsSigned():
			return types.NewInt32Object()
		case info.Is64Bit():
			return types.NewUint64Object()
		default:
			return types.NewUint32Object()
		}
	default:
		if info.Is64Bit() {
			return types.NewFloat64Object()
		}
		return types.NewFloat32Object()
	}
}

// objectByType accepts the fixed override-type vocabulary from §4.D.4.
func objectByType(overrideType string) (types.DataObjectBase, error) {
	switch overrideType {
	case "int", "int32":
		return types.NewInt32Object(), nil
	case "float", "float32":
		return types.NewFloat32Object(), nil
	case "double", "float64":
		return types.NewFloat64Object(), nil
	case "string":
		return types.NewStringObject(), nil
	case "int64":
		return types.NewInt64Object(), nil
	case "uint64":
		return types.NewUint64Object(), nil
	case "uint32", "uint":
		return types.NewUint32Object(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadOverrideType, overrideType)
	}
}
