package epipred

import (
	"sort"

	"github.com/mingzhi/gomath/stat/desc/meanvar"
)

// AlleleSummary is the distribution of one metric for one allele in a
// table, for quick run reports.
type AlleleSummary struct {
	Allele *Allele
	N      int
	Mean   float64
	Var    float64
}

// Summarize computes per-allele mean and variance of one metric. Alleles
// without that metric are omitted; the result is sorted by allele name.
func Summarize(t ScoreTable, m Metric) []AlleleSummary {
	sums := []AlleleSummary{}
	for a, metrics := range t {
		vals := metrics[m]
		if len(vals) == 0 {
			continue
		}
		mv := meanvar.New()
		for _, v := range vals {
			mv.Increment(v)
		}
		sums = append(sums, AlleleSummary{
			Allele: a,
			N:      int(mv.Mean.GetN()),
			Mean:   mv.Mean.GetResult(),
			Var:    mv.Var.GetResult(),
		})
	}
	sort.Slice(sums, func(i, j int) bool { return sums[i].Allele.Name() < sums[j].Allele.Name() })
	return sums
}
