package epipred

import (
	"fmt"
	"strings"
)

// ScoreTable is the merged prediction table: allele -> metric -> peptide ->
// value, keyed by the caller's original objects. A pair that never appeared
// in any successful invocation is absent, not zero.
type ScoreTable map[*Allele]map[Metric]map[*Peptide]float64

func (t ScoreTable) set(a *Allele, m Metric, p *Peptide, v float64) {
	metrics, found := t[a]
	if !found {
		metrics = make(map[Metric]map[*Peptide]float64)
		t[a] = metrics
	}
	vals, found := metrics[m]
	if !found {
		vals = make(map[*Peptide]float64)
		metrics[m] = vals
	}
	vals[p] = v
}

// Get looks one value up.
func (t ScoreTable) Get(a *Allele, m Metric, p *Peptide) (float64, bool) {
	v, found := t[a][m][p]
	return v, found
}

// Len counts the (allele, metric, peptide) triples in the table.
func (t ScoreTable) Len() int {
	n := 0
	for _, metrics := range t {
		for _, vals := range metrics {
			n += len(vals)
		}
	}
	return n
}

// merge folds one invocation's parsed output into the table, re-keying
// strings back to domain objects through the reverse maps. Names without a
// reverse entry are ignored; the tool echoed something it was not asked
// about.
func (t ScoreTable) merge(raw RawResult, byAllele map[string]*Allele, byPep map[string]*Peptide) {
	for name, metrics := range raw {
		a, found := byAllele[name]
		if !found {
			continue
		}
		for m, vals := range metrics {
			for seq, v := range vals {
				p, found := byPep[seq]
				if !found {
					continue
				}
				t.set(a, m, p, v)
			}
		}
	}
}

// NoResultError reports a predict run whose merged table came out empty.
// Its message lists what was attempted, so "nothing was supported" reads
// differently from "every job ran and produced nothing usable".
type NoResultError struct {
	Tool    string
	Alleles []string // allele names attempted, in tool form
	Lengths []int    // peptide lengths attempted
}

func (e *NoResultError) Error() string {
	if len(e.Alleles) == 0 || len(e.Lengths) == 0 {
		return fmt.Sprintf("%s: no predictions: no supported allele/length combination to attempt (supported alleles requested: %d, usable lengths: %d)",
			e.Tool, len(e.Alleles), len(e.Lengths))
	}
	return fmt.Sprintf("%s: no predictions for alleles [%s] at lengths %v",
		e.Tool, strings.Join(e.Alleles, ", "), e.Lengths)
}
