package resultset

import "errors"

// Sentinel errors raised by ResultSet operations (§7). ErrUnknownField is
// reused from the frame package since DataFrame lookups raise it first.
var (
	// ErrEmptyResultSet is raised by Get when no frames have been added.
	ErrEmptyResultSet = errors.New("bufrquery: result set is empty")

	// ErrBadGroupByPath is raised when the target and group-by fields do
	// not share a common path prefix (from index 1, §4.D.2 step 1).
	ErrBadGroupByPath = errors.New("bufrquery: group-by and target fields do not share a common path")

	// ErrBadConversion is raised when overrideType crosses the
	// string/numeric boundary.
	ErrBadConversion = errors.New("bufrquery: cannot convert between string and numeric types")

	// ErrBadOverrideType is raised when overrideType isn't in the
	// accepted vocabulary (§4.D.4).
	ErrBadOverrideType = errors.New("bufrquery: unknown override type")
)
