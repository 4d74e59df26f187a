package query

import "errors"

// Sentinel errors raised by the query package (§7).
var (
	// ErrInvalidQuery is raised when a textual query path is malformed.
	ErrInvalidQuery = errors.New("bufrquery: malformed query path")

	// ErrUnknownName is raised by QuerySet.QueriesFor for a name that was
	// never added.
	ErrUnknownName = errors.New("bufrquery: unknown query name")
)
