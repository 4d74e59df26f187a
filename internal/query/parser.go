// Package query implements the textual path grammar (§4.A) and the
// QuerySet admission policy (§4.B) built on top of it.
package query

import (
	"fmt"
	"strings"

	"github.com/rhoneyager-tomorrow/ioda-converters/pkg/types"
)

// alternationSeparator splits one textual query into several alternative
// paths that all get elaborated as separate Query values under the same
// caller-chosen name. The grammar itself (§4.A) is silent on how
// "multiple queries may share a name when the textual query expands to
// alternatives" is spelled; this repository uses `|` as the alternation
// token, the same way a caller would write alternative export paths for
// one logical field (e.g. two subsets that carry the same quantity under
// different node names).
const alternationSeparator = "|"

// Parse translates a textual query string into one or more structured
// Query values (§4.A, §6 "Consumed from the path parser"). The grammar is
// a `/`-separated path: the first component selects the subset (`*` for
// wildcard, anything else a literal subset name), and the remaining
// components name nodes verbatim — including any bracketed index
// notation, which this layer treats as an opaque path component.
//
// queryStr may itself contain several `|`-separated alternative paths;
// each elaborates to its own Query, all returned in encounter order.
func Parse(queryStr string) ([]types.Query, error) {
	alternatives := strings.Split(queryStr, alternationSeparator)

	queries := make([]types.Query, 0, len(alternatives))
	for _, alt := range alternatives {
		q, err := parseOne(alt)
		if err != nil {
			return nil, err
		}
		queries = append(queries, q)
	}

	return queries, nil
}

func parseOne(path string) (types.Query, error) {
	rawComponents := strings.Split(path, types.PathSeparator)

	components := make([]string, 0, len(rawComponents))
	for _, c := range rawComponents {
		if c == "" {
			continue
		}
		components = append(components, c)
	}

	if len(components) == 0 {
		return types.Query{}, fmt.Errorf("%w: %q", ErrInvalidQuery, path)
	}

	subsetToken := components[0]
	rest := components[1:]

	selector := types.SubsetSelector{}
	if subsetToken == types.WildcardSubset {
		selector.IsWildcard = true
	} else {
		selector.Name = subsetToken
	}

	return types.Query{
		Subset:     selector,
		Components: append([]string(nil), rest...),
	}, nil
}
