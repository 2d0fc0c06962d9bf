package epipred

import (
	"fmt"
	"sort"
)

// A Peptide is a short amino-acid sequence to be scored against alleles.
// Identity is the caller's pointer; Data is an opaque handle carried through
// untouched for the caller's bookkeeping.
type Peptide struct {
	Seq  string
	Data interface{}
}

func NewPeptide(seq string) *Peptide {
	return &Peptide{Seq: seq}
}

// dedupPeptides collapses peptides that share sequence text. The returned
// sequence list follows first-appearance order; in the reverse map the last
// object with a given sequence wins the slot, so predictions for duplicate
// sequences land on that object.
func dedupPeptides(peps []*Peptide) ([]string, map[string]*Peptide) {
	seqs := []string{}
	bySeq := make(map[string]*Peptide)
	for _, p := range peps {
		if _, found := bySeq[p.Seq]; !found {
			seqs = append(seqs, p.Seq)
		}
		bySeq[p.Seq] = p
	}
	return seqs, bySeq
}

// groupByLength partitions sequences by length and drops every group whose
// length the tool does not support, one warning per dropped group. The
// returned length list is sorted ascending so job planning is deterministic.
func groupByLength(seqs []string, spec *ToolSpec) (map[int][]string, []int, []Warning) {
	groups := make(map[int][]string)
	for _, s := range seqs {
		groups[len(s)] = append(groups[len(s)], s)
	}

	warns := []Warning{}
	lengths := []int{}
	for l := range groups {
		if !spec.SupportsLength(l) {
			min, max := spec.LengthRange()
			warns = append(warns, Warning{
				Kind:    WarnUnsupportedLength,
				Value:   fmt.Sprintf("%d", l),
				Context: fmt.Sprintf("%s supports peptide lengths %d-%d", spec.Name, min, max),
			})
			delete(groups, l)
			continue
		}
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	sort.Slice(warns, func(i, j int) bool { return warns[i].Value < warns[j].Value })

	return groups, lengths, warns
}

// chunkSeqs splits one length group into consecutive slices of at most size
// sequences; the last slice may be shorter. size <= 0 means no chunking.
// Input order is preserved, so chunk membership is stable.
func chunkSeqs(seqs []string, size int) [][]string {
	if size <= 0 || size >= len(seqs) {
		if len(seqs) == 0 {
			return nil
		}
		return [][]string{seqs}
	}
	chunks := [][]string{}
	for i := 0; i < len(seqs); i += size {
		end := i + size
		if end > len(seqs) {
			end = len(seqs)
		}
		chunks = append(chunks, seqs[i:end])
	}
	return chunks
}
