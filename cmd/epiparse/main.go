package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/mingzhi/epipred"
	"gopkg.in/alecthomas/kingpin.v2"
)

// epiparse converts an already-produced raw predictor output file into a
// tidy table, without re-running the tool.
func main() {
	app := kingpin.New("epiparse", "Convert raw MHC predictor output into a tidy table")
	app.Version("v0.1")
	rawFileArg := app.Arg("rawfile", "raw tool output file").Required().String()
	outFileArg := app.Arg("outfile", "out file (TSV)").Required().String()
	toolFlag := app.Flag("tool", "registered tool whose output layout to use").Required().String()
	allelesFlag := app.Flag("alleles", "comma-separated allele group the tool was invoked with, in order").Default("").String()
	specFlag := app.Flag("spec", "extra tool spec (TOML) to load first").Default("").String()
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *specFlag != "" {
		if _, err := epipred.LoadToolSpec(*specFlag); err != nil {
			log.Fatalln(err)
		}
	}

	spec, err := epipred.LookupTool(*toolFlag)
	if err != nil {
		log.Fatalln(err)
	}

	alleles := []string{}
	for _, name := range strings.Split(*allelesFlag, ",") {
		if name = strings.TrimSpace(name); name != "" {
			alleles = append(alleles, name)
		}
	}
	if len(alleles) == 0 {
		alleles = spec.Alleles
	}

	raw, err := spec.NewParser().Parse(*rawFileArg, alleles)
	if err != nil {
		log.Fatalln(err)
	}

	w, err := os.Create(*outFileArg)
	if err != nil {
		log.Fatalln(err)
	}
	defer w.Close()

	type row struct {
		allele  string
		metric  string
		peptide string
		value   float64
	}
	rows := []row{}
	for allele, metrics := range raw {
		for m, vals := range metrics {
			for pep, v := range vals {
				rows = append(rows, row{allele, string(m), pep, v})
			}
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].allele != rows[j].allele {
			return rows[i].allele < rows[j].allele
		}
		if rows[i].metric != rows[j].metric {
			return rows[i].metric < rows[j].metric
		}
		return rows[i].peptide < rows[j].peptide
	})

	w.WriteString("allele\tmetric\tpeptide\tvalue\n")
	for _, r := range rows {
		w.WriteString(fmt.Sprintf("%s\t%s\t%s\t%g\n", r.allele, r.metric, r.peptide, r.value))
	}
}
