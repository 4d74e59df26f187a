package query

import (
	"fmt"
	"sort"

	"github.com/rhoneyager-tomorrow/ioda-converters/pkg/types"
)

type stringSet map[string]struct{}

func newStringSet(names []string) stringSet {
	s := make(stringSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s stringSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s stringSet) clone() stringSet {
	out := make(stringSet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func (s stringSet) intersect(other stringSet) stringSet {
	out := make(stringSet)
	for k := range s {
		if other.has(k) {
			out[k] = struct{}{}
		}
	}
	return out
}

// QuerySet is a named collection of parsed Queries together with the
// subset-admission policy described in §4.B. It has a monotonic build
// phase (New/NewRestricted, then zero or more Add calls) followed by pure
// read operations (IncludesSubset, Names, QueriesFor) — the two phases
// must not interleave concurrently (§5).
type QuerySet struct {
	queryMap map[string][]types.Query

	includesAll      bool
	addHasBeenCalled bool
	limitSubsets     stringSet
	presentSubsets   stringSet
}

// New constructs an unrestricted QuerySet: every subset is admitted
// until the first Add call narrows that.
func New() *QuerySet {
	return &QuerySet{
		queryMap:       make(map[string][]types.Query),
		includesAll:    true,
		limitSubsets:   newStringSet(nil),
		presentSubsets: newStringSet(nil),
	}
}

// NewRestricted constructs a QuerySet restricted to the given subset
// names. An empty slice behaves exactly like New (§4.B: "if S = ∅,
// behave as unrestricted").
func NewRestricted(subsets []string) *QuerySet {
	limit := newStringSet(subsets)
	qs := &QuerySet{
		queryMap:       make(map[string][]types.Query),
		limitSubsets:   limit,
		presentSubsets: newStringSet(nil),
	}
	if len(limit) == 0 {
		qs.includesAll = true
	}
	return qs
}

// Add parses queryStr and appends the resulting Queries to the list
// stored under name (§4.B invariant (d): queries under the same name are
// appended, never deduplicated or replaced), updating the admission
// state as it goes.
func (qs *QuerySet) Add(name, queryStr string) error {
	if !qs.addHasBeenCalled {
		qs.addHasBeenCalled = true
		qs.includesAll = false
	}

	parsed, err := Parse(queryStr)
	if err != nil {
		return err
	}

	for _, q := range parsed {
		if len(qs.limitSubsets) == 0 {
			// Unrestricted path: a wildcard saturates admission; any
			// wildcard among the parsed alternatives does so, regardless
			// of where in the alternation it appears (§9 Open Question).
			if q.Subset.IsWildcard {
				qs.includesAll = true
			} else {
				qs.presentSubsets[q.Subset.Name] = struct{}{}
			}
		} else {
			if q.Subset.IsWildcard {
				// Wildcard saturates within the limit.
				qs.presentSubsets = qs.limitSubsets.clone()
			} else {
				qs.presentSubsets[q.Subset.Name] = struct{}{}
				qs.presentSubsets = qs.limitSubsets.intersect(qs.presentSubsets)
			}
		}
	}

	qs.queryMap[name] = append(qs.queryMap[name], parsed...)

	return nil
}

// IncludesSubset reports whether messages belonging to subset s must be
// processed, per the admission policy in §4.B.
func (qs *QuerySet) IncludesSubset(subset string) bool {
	if qs.includesAll {
		return true
	}
	if len(qs.queryMap) == 0 {
		return qs.limitSubsets.has(subset)
	}
	return qs.presentSubsets.has(subset)
}

// Names returns the query names added so far, sorted lexically (matching
// the iteration order of the original implementation's std::map-backed
// query table).
func (qs *QuerySet) Names() []string {
	names := make([]string, 0, len(qs.queryMap))
	for name := range qs.queryMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// QueriesFor returns the Queries stored under name, or ErrUnknownName if
// name was never added.
func (qs *QuerySet) QueriesFor(name string) ([]types.Query, error) {
	queries, ok := qs.queryMap[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return queries, nil
}
