package frame

import "errors"

// ErrUnknownField is raised by DataFrame lookups (§4.C) and by the
// ResultSet operations built on top of them (§7) when a field name isn't
// present.
var ErrUnknownField = errors.New("bufrquery: unknown field")
