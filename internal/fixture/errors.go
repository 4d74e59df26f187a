package fixture

import "errors"

// Fixture-loader-local errors (§4.E, §7): these never cross into the
// core ResultSet/QuerySet error taxonomy — they describe problems with
// the fixture file itself, not with a query.
var (
	// ErrFixtureNotFound is returned when no file exists at the fixture
	// path.
	ErrFixtureNotFound = errors.New("bufrquery: fixture file not found")

	// ErrFixtureCorrupt is returned when the fixture's gzip or msgpack
	// framing can't be decoded, and when an existing fixture file can't
	// be opened.
	ErrFixtureCorrupt = errors.New("bufrquery: fixture file is corrupt")
)
