package main

import (
	"encoding/csv"
	"flag"
	"os"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Command for drawing per-allele score boxplots from a tidy result table.
type cmdPlot struct {
	cmdConfig // embedded cmdConfig.

	in  *string
	out *string
}

func (cmd *cmdPlot) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.cmdConfig.Flags(fs)
	cmd.in = fs.String("i", "", "result table (TSV) written by predict.")
	cmd.out = fs.String("o", "scores.pdf", "plot file (PDF).")
	return fs
}

func (cmd *cmdPlot) Run(args []string) {
	cmd.ParseConfig()
	if *cmd.in == "" {
		ERROR.Fatalln("plot needs -i <table>")
	}

	scores := readScores(*cmd.in)
	if len(scores) == 0 {
		ERROR.Fatalf("No score rows in %s\n", *cmd.in)
	}

	alleles := []string{}
	for name := range scores {
		alleles = append(alleles, name)
	}
	sort.Strings(alleles)

	p, err := plot.New()
	if err != nil {
		ERROR.Fatalf("Cannot create plot: %v\n", err)
	}
	p.Title.Text = strings.TrimSuffix(*cmd.in, ".tsv")
	p.Y.Label.Text = "score"

	w := vg.Points(20)
	index := 0.0
	for _, name := range alleles {
		b, err := plotter.NewBoxPlot(w, index, plotter.Values(scores[name]))
		if err != nil {
			ERROR.Fatalf("Cannot create boxplot: %v\n", err)
		}
		index++
		p.Add(b)
	}
	p.NominalX(alleles...)

	if err := p.Save(6, 4, *cmd.out); err != nil {
		ERROR.Fatalln(err)
	}
	INFO.Printf("Score boxplots were saved to %s\n", *cmd.out)
}

// readScores collects the Score rows of a tidy table, per allele.
func readScores(fileName string) map[string][]float64 {
	f, err := os.Open(fileName)
	if err != nil {
		ERROR.Fatalln(err)
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.Comma = '\t'
	rd.FieldsPerRecord = -1
	rows, err := rd.ReadAll()
	if err != nil {
		ERROR.Fatalln(err)
	}

	scores := make(map[string][]float64)
	for i, row := range rows {
		if i == 0 || len(row) < 4 || row[1] != "Score" {
			continue
		}
		v, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			ERROR.Fatalf("%s row %d: %v\n", fileName, i+1, err)
		}
		scores[row[0]] = append(scores[row[0]], v)
	}
	return scores
}
