// File path: internal/wordgraph/correlate_test.go
package wordgraph

import (
	"strings"
	"testing"
)

func TestCorrelateForwardMention(t *testing.T) {
	entries := []WordEntry{
		{Term: "A", RelatedConcepts: []string{"B"}},
		{Term: "B"},
	}
	correlations := Correlate(entries)
	found := false
	for _, corr := range correlations {
		if corr.Source == 0 && corr.Target == 1 {
			found = true
			if !strings.Contains(corr.Explanation, "A includes B") {
				t.Fatalf("unexpected explanation: %s", corr.Explanation)
			}
		}
	}
	if !found {
		t.Fatalf("expected a 0->1 correlation, got %+v", correlations)
	}
}

func TestCorrelateNoSelfLoops(t *testing.T) {
	entries := []WordEntry{
		{Term: "Recursion", RelatedConcepts: []string{"recursion", "Base Case"}},
		{Term: "Base Case"},
	}
	for _, corr := range Correlate(entries) {
		if corr.Source == corr.Target {
			t.Fatalf("self-loop emitted: %+v", corr)
		}
	}
}

func TestCorrelateCaseInsensitive(t *testing.T) {
	entries := []WordEntry{
		{Term: "Concept X"},
		{Term: "Y", RelatedConcepts: []string{"concept X"}},
	}
	correlations := Correlate(entries)
	if len(correlations) == 0 {
		t.Fatalf("expected case-insensitive match")
	}
	for _, corr := range correlations {
		if corr.Source != 1 || corr.Target != 0 {
			t.Fatalf("unexpected direction: %+v", corr)
		}
	}
}

// A mutual mention produces edges from both passes; the overlap is part of
// the contract, so only a lower bound is asserted.
func TestCorrelateMutualMentionProducesDuplicates(t *testing.T) {
	entries := []WordEntry{
		{Term: "A", RelatedConcepts: []string{"B"}},
		{Term: "B", RelatedConcepts: []string{"A"}},
	}
	correlations := Correlate(entries)
	var forward, backward int
	for _, corr := range correlations {
		switch {
		case corr.Source == 0 && corr.Target == 1:
			forward++
		case corr.Source == 1 && corr.Target == 0:
			backward++
		}
	}
	if forward < 1 || backward < 1 {
		t.Fatalf("expected edges both ways, got forward=%d backward=%d", forward, backward)
	}
	if len(correlations) != forward+backward {
		t.Fatalf("unexpected extra correlations: %+v", correlations)
	}
}

// The term index is last-write-wins, so the first pass resolves "Cache" to
// the later duplicate; the pairwise pass still sees both duplicates.
func TestCorrelateDuplicateTermsLastWins(t *testing.T) {
	entries := []WordEntry{
		{Term: "Cache"},
		{Term: "cache"},
		{Term: "CDN", RelatedConcepts: []string{"Cache"}},
	}
	correlations := Correlate(entries)
	counts := make(map[[2]int]int)
	for _, corr := range correlations {
		counts[[2]int{corr.Source, corr.Target}]++
	}
	if counts[[2]int{2, 1}] != 2 {
		t.Fatalf("expected 2->1 from both passes, got %+v", counts)
	}
	if counts[[2]int{2, 0}] != 1 {
		t.Fatalf("expected 2->0 from the pairwise pass, got %+v", counts)
	}
	if len(correlations) != 3 {
		t.Fatalf("expected 3 correlations, got %+v", correlations)
	}
}

func TestCorrelateUnknownConceptIgnored(t *testing.T) {
	entries := []WordEntry{
		{Term: "A", RelatedConcepts: []string{"Nonexistent"}},
		{Term: "B"},
	}
	if got := Correlate(entries); len(got) != 0 {
		t.Fatalf("expected no correlations, got %+v", got)
	}
}
