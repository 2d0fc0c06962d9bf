package epipred

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Metric names one score dimension of a prediction.
type Metric string

const (
	Score Metric = "Score"
	Rank  Metric = "Rank"
)

// RawResult is one invocation's parsed output, keyed by the tool-form
// allele string: allele -> metric -> peptide sequence -> value.
type RawResult map[string]map[Metric]map[string]float64

func (r RawResult) set(allele string, m Metric, pep string, v float64) {
	metrics, found := r[allele]
	if !found {
		metrics = make(map[Metric]map[string]float64)
		r[allele] = metrics
	}
	vals, found := metrics[m]
	if !found {
		vals = make(map[string]float64)
		metrics[m] = vals
	}
	vals[pep] = v
}

// A ResultParser reads one invocation's raw output file. alleles is the
// ordered group the command was rendered with; wide-format tools do not
// repeat allele names in the file, so columns are resolved against this
// order.
type ResultParser interface {
	Parse(path string, alleles []string) (RawResult, error)
}

// WideLayout describes the wide output family: one row per peptide, with
// per-allele column blocks repeating at a fixed stride after the header
// rows.
type WideLayout struct {
	SkipRows    int    `toml:"skip_rows"`
	PeptideCol  int    `toml:"peptide_col"`
	FirstCol    int    `toml:"first_col"`    // first column of the first allele block
	Stride      int    `toml:"stride"`       // columns per allele block
	ScoreOffset int    `toml:"score_offset"` // score column within a block
	RankOffset  int    `toml:"rank_offset"`  // rank column within a block; -1 when the tool reports none
	Transform   string `toml:"transform"`    // "" or "ic50"
}

func (l WideLayout) validate() error {
	if l.PeptideCol < 0 || l.FirstCol < 0 || l.Stride < 1 || l.ScoreOffset < 0 || l.ScoreOffset >= l.Stride {
		return fmt.Errorf("bad wide layout %+v", l)
	}
	if l.RankOffset >= l.Stride {
		return fmt.Errorf("bad wide layout rank offset %d for stride %d", l.RankOffset, l.Stride)
	}
	_, err := transformByName(l.Transform)
	return err
}

// WideParser is the generic parser for the wide family (netMHC 3.x and
// relatives).
type WideParser struct {
	Layout WideLayout
}

func (p WideParser) Parse(path string, alleles []string) (RawResult, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	tr, _ := transformByName(p.Layout.Transform)

	res := make(RawResult)
	for i, row := range rows {
		if i < p.Layout.SkipRows || blankRow(row) {
			continue
		}
		if p.Layout.PeptideCol >= len(row) {
			return nil, fmt.Errorf("%s: row %d has %d columns, want peptide at %d",
				path, i+1, len(row), p.Layout.PeptideCol)
		}
		pep := strings.TrimSpace(row[p.Layout.PeptideCol])
		for j, allele := range alleles {
			base := p.Layout.FirstCol + j*p.Layout.Stride
			score, err := atofCol(path, i, row, base+p.Layout.ScoreOffset)
			if err != nil {
				return nil, err
			}
			res.set(allele, Score, pep, tr(score))
			if p.Layout.RankOffset >= 0 {
				rank, err := atofCol(path, i, row, base+p.Layout.RankOffset)
				if err != nil {
					return nil, err
				}
				res.set(allele, Rank, pep, rank)
			}
		}
	}
	return res, nil
}

// LongLayout describes the long output family: one row per (allele,
// peptide) pair, with the allele named on the row itself.
type LongLayout struct {
	SkipRows   int    `toml:"skip_rows"`
	AlleleCol  int    `toml:"allele_col"`
	PeptideCol int    `toml:"peptide_col"`
	ScoreCol   int    `toml:"score_col"`
	RankCol    int    `toml:"rank_col"` // -1 when the tool reports none
	Transform  string `toml:"transform"`
}

func (l LongLayout) validate() error {
	if l.AlleleCol < 0 || l.PeptideCol < 0 || l.ScoreCol < 0 {
		return fmt.Errorf("bad long layout %+v", l)
	}
	_, err := transformByName(l.Transform)
	return err
}

// LongParser is the generic parser for the long family (netMHCpan,
// pickpocket and relatives).
type LongParser struct {
	Layout LongLayout
}

func (p LongParser) Parse(path string, alleles []string) (RawResult, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	tr, _ := transformByName(p.Layout.Transform)

	res := make(RawResult)
	for i, row := range rows {
		if i < p.Layout.SkipRows || blankRow(row) {
			continue
		}
		need := p.Layout.AlleleCol
		if p.Layout.PeptideCol > need {
			need = p.Layout.PeptideCol
		}
		if need >= len(row) {
			return nil, fmt.Errorf("%s: row %d has %d columns, want at least %d",
				path, i+1, len(row), need+1)
		}
		allele := strings.TrimSpace(row[p.Layout.AlleleCol])
		pep := strings.TrimSpace(row[p.Layout.PeptideCol])
		score, err := atofCol(path, i, row, p.Layout.ScoreCol)
		if err != nil {
			return nil, err
		}
		res.set(allele, Score, pep, tr(score))
		if p.Layout.RankCol >= 0 {
			rank, err := atofCol(path, i, row, p.Layout.RankCol)
			if err != nil {
				return nil, err
			}
			res.set(allele, Rank, pep, rank)
		}
	}
	return res, nil
}

// readRows reads a tab-separated output file whole. Tools pad fields with
// spaces, so callers trim each cell.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.Comma = '\t'
	rd.FieldsPerRecord = -1
	rd.LazyQuotes = true
	rows, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return rows, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func atofCol(path string, row int, cells []string, col int) (float64, error) {
	if col >= len(cells) {
		return 0, fmt.Errorf("%s: row %d has %d columns, want a number at %d",
			path, row+1, len(cells), col)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cells[col]), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: row %d column %d: %v", path, row+1, col, err)
	}
	return v, nil
}

// transformIC50 converts a raw IC50 binding affinity in nM into the
// conventional 1 - log50k(ic50) score, clamped at zero.
func transformIC50(ic50 float64) float64 {
	s := 1 - math.Log(ic50)/math.Log(50000)
	if s < 0 {
		s = 0
	}
	return s
}

func transformByName(name string) (func(float64) float64, error) {
	switch name {
	case "", "none":
		return func(x float64) float64 { return x }, nil
	case "ic50":
		return transformIC50, nil
	}
	return nil, fmt.Errorf("unknown score transform %q", name)
}
