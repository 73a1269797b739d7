// File path: internal/wordgraph/correlate.go
package wordgraph

import (
	"fmt"
	"strings"
)

// Correlate infers directed relationships between entries from textual
// mention of each other's terms, in two passes:
//
//  1. For each entry, every related concept that matches another entry's term
//     (case-insensitive) yields an edge from the mentioning entry.
//  2. Every ordered pair is then rechecked the other way around: if entry j
//     lists entry i's term among its related concepts, an edge from j to i is
//     emitted.
//
// The passes overlap on purpose: when i lists j's term, pass 1 and pass 2
// both emit an i->j edge. The duplicate is kept as a bidirectional
// confirmation signal; consumers must not assume edges are unique per pair.
// Self-loops are never emitted. When two entries share a lowercased term the
// later index wins the lookup.
func Correlate(entries []WordEntry) []Correlation {
	termToIndex := make(map[string]int, len(entries))
	for i, entry := range entries {
		termToIndex[strings.ToLower(entry.Term)] = i
	}

	var correlations []Correlation
	for i, entry := range entries {
		for _, concept := range entry.RelatedConcepts {
			j, ok := termToIndex[strings.ToLower(concept)]
			if !ok || j == i {
				continue
			}
			correlations = append(correlations, Correlation{
				Source:      i,
				Target:      j,
				Explanation: fmt.Sprintf("%s includes %s as a related concept", entry.Term, concept),
			})
		}
	}

	for i, entry := range entries {
		for j, other := range entries {
			if i == j {
				continue
			}
			if mentions(other.RelatedConcepts, entry.Term) {
				correlations = append(correlations, Correlation{
					Source:      j,
					Target:      i,
					Explanation: fmt.Sprintf("%s includes %s as a related concept", other.Term, entry.Term),
				})
			}
		}
	}
	return correlations
}

func mentions(concepts []string, term string) bool {
	for _, concept := range concepts {
		if strings.EqualFold(concept, term) {
			return true
		}
	}
	return false
}
