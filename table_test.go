package epipred

import (
	"strings"
	"testing"
)

func TestScoreTableMerge(t *testing.T) {
	a := &Allele{Locus: "A", Supertype: "02", Subtype: "01"}
	p1 := NewPeptide("SIINFEKL")
	p2 := NewPeptide("AAAWYLWE")

	raw := make(RawResult)
	raw.set("HLA-A02:01", Score, "SIINFEKL", 0.9)
	raw.set("HLA-A02:01", Score, "AAAWYLWE", 0.1)
	raw.set("HLA-A02:01", Rank, "SIINFEKL", 0.5)
	raw.set("HLA-B07:02", Score, "SIINFEKL", 0.7) // not asked about
	raw.set("HLA-A02:01", Score, "XXXXXXXX", 0.3) // not asked about

	table := make(ScoreTable)
	table.merge(raw,
		map[string]*Allele{"HLA-A02:01": a},
		map[string]*Peptide{"SIINFEKL": p1, "AAAWYLWE": p2},
	)

	if got, found := table.Get(a, Score, p1); !found || got != 0.9 {
		t.Errorf("Get = %g, %v", got, found)
	}
	if got, found := table.Get(a, Rank, p1); !found || got != 0.5 {
		t.Errorf("rank = %g, %v", got, found)
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3: unknown names must be ignored", table.Len())
	}
}

func TestScoreTableMergeOverwrite(t *testing.T) {
	a := &Allele{Locus: "A", Supertype: "02", Subtype: "01"}
	p := NewPeptide("SIINFEKL")
	table := make(ScoreTable)

	first := make(RawResult)
	first.set("HLA-A02:01", Score, "SIINFEKL", 0.2)
	second := make(RawResult)
	second.set("HLA-A02:01", Score, "SIINFEKL", 0.8)

	byA := map[string]*Allele{"HLA-A02:01": a}
	byP := map[string]*Peptide{"SIINFEKL": p}
	table.merge(first, byA, byP)
	table.merge(second, byA, byP)

	if got, _ := table.Get(a, Score, p); got != 0.8 {
		t.Errorf("later chunk should overwrite, got %g", got)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d", table.Len())
	}
}

func TestNoResultError(t *testing.T) {
	attempted := &NoResultError{
		Tool:    "netmhc-3.4",
		Alleles: []string{"A0201", "B0702"},
		Lengths: []int{9, 10},
	}
	msg := attempted.Error()
	for _, want := range []string{"netmhc-3.4", "A0201", "B0702", "9", "10"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q should mention %q", msg, want)
		}
	}

	nothing := &NoResultError{Tool: "netmhc-3.4"}
	if !strings.Contains(nothing.Error(), "no supported allele/length combination") {
		t.Errorf("error %q should say nothing was attempted", nothing.Error())
	}
	if attempted.Error() == nothing.Error() {
		t.Error("the two outcomes must read differently")
	}
}
