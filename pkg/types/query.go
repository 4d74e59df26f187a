package types

import "strings"

// PathSeparator is the separator used in textual query paths.
const PathSeparator = "/"

// WildcardSubset is the token that selects "any subset".
const WildcardSubset = "*"

// SubsetSelector is a tagged variant: either a wildcard ("any subset
// admitted") or a literal subset name.
type SubsetSelector struct {
	IsWildcard bool
	Name       string
}

// String renders the selector back to its textual form.
func (s SubsetSelector) String() string {
	if s.IsWildcard {
		return WildcardSubset
	}
	return s.Name
}

// Equal reports structural equality between two selectors.
func (s SubsetSelector) Equal(other SubsetSelector) bool {
	return s.IsWildcard == other.IsWildcard && s.Name == other.Name
}

// Query is an immutable, structurally-equal value describing one parsed
// path expression: an optional subset selector and an ordered list of
// path components (the leading root component already discarded).
type Query struct {
	Subset     SubsetSelector
	Components []string
}

// Equal reports structural equality between two queries.
func (q Query) Equal(other Query) bool {
	if !q.Subset.Equal(other.Subset) {
		return false
	}
	if len(q.Components) != len(other.Components) {
		return false
	}
	for i, c := range q.Components {
		if other.Components[i] != c {
			return false
		}
	}
	return true
}

// String renders the query back to its `/`-separated textual form,
// including the subset selector as the first component.
func (q Query) String() string {
	parts := make([]string, 0, len(q.Components)+1)
	parts = append(parts, q.Subset.String())
	parts = append(parts, q.Components...)
	return strings.Join(parts, PathSeparator)
}
