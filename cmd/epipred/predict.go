package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mingzhi/biogo/seq"
	"github.com/mingzhi/epipred"
)

// Command for running one predictor over a peptide file.
type cmdPredict struct {
	cmdConfig // embedded cmdConfig.

	in       *string
	out      *string
	alleles  *string
	chunk    *int
	progress *bool
}

func (cmd *cmdPredict) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.cmdConfig.Flags(fs)
	cmd.in = fs.String("i", "", "peptide file: FASTA, or one raw sequence per line.")
	cmd.out = fs.String("o", "", "output table (TSV).")
	cmd.alleles = fs.String("a", "", "comma-separated allele names; empty means the tool's full supported set.")
	cmd.chunk = fs.Int("chunk", 0, "peptides per input file; 0 means one file per length group.")
	cmd.progress = fs.Bool("progress", false, "show progress.")
	return fs
}

func (cmd *cmdPredict) Run(args []string) {
	cmd.ParseConfig()
	if *cmd.in == "" || *cmd.out == "" {
		ERROR.Fatalln("predict needs -i <peptides> and -o <table>")
	}

	peptides := readPeptides(*cmd.in)
	alleles := parseAlleles(*cmd.alleles)

	p, err := epipred.NewPredictor(cmd.toolName)
	if err != nil {
		ERROR.Fatalln(err)
	}
	p.Exec = cmd.execPath
	p.Options = cmd.options
	p.ChunkSize = *cmd.chunk
	p.Progress = *cmd.progress

	res, err := p.Predict(peptides, alleles)
	if err != nil {
		ERROR.Fatalln(err)
	}

	writeTable(*cmd.out, res.Table)
	INFO.Printf("%d predictions were saved to %s\n", res.Table.Len(), *cmd.out)
	for _, s := range epipred.Summarize(res.Table, epipred.Score) {
		INFO.Printf("%s: n = %d, score mean = %.4f, var = %.4f\n",
			s.Allele.Name(), s.N, s.Mean, s.Var)
	}
}

// readPeptides loads a FASTA file, or a plain file with one sequence per
// line when the first byte is not '>'.
func readPeptides(fileName string) []*epipred.Peptide {
	f, err := os.Open(fileName)
	if err != nil {
		ERROR.Fatalln(err)
	}
	defer f.Close()

	rd := bufio.NewReader(f)
	head, err := rd.Peek(1)
	if err != nil {
		ERROR.Fatalf("Cannot read %s: %v\n", fileName, err)
	}

	peptides := []*epipred.Peptide{}
	if head[0] == '>' {
		fastaRd := seq.NewFastaReader(rd)
		seqs, err := fastaRd.ReadAll()
		if err != nil {
			ERROR.Fatalf("Cannot read %s: %v\n", fileName, err)
		}
		for _, s := range seqs {
			peptides = append(peptides, &epipred.Peptide{
				Seq:  strings.ToUpper(strings.TrimSpace(string(s.Seq))),
				Data: s.Id,
			})
		}
	} else {
		scanner := bufio.NewScanner(rd)
		for scanner.Scan() {
			line := strings.ToUpper(strings.TrimSpace(scanner.Text()))
			if line == "" {
				continue
			}
			peptides = append(peptides, epipred.NewPeptide(line))
		}
		if err := scanner.Err(); err != nil {
			ERROR.Fatalf("Cannot read %s: %v\n", fileName, err)
		}
	}

	if len(peptides) == 0 {
		ERROR.Fatalf("No peptides in %s\n", fileName)
	}
	return peptides
}

func parseAlleles(list string) []*epipred.Allele {
	alleles := []*epipred.Allele{}
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		a, err := epipred.ParseAllele(name)
		if err != nil {
			ERROR.Fatalln(err)
		}
		alleles = append(alleles, a)
	}
	return alleles
}

// writeTable writes the merged table as tidy TSV, one row per (allele,
// metric, peptide), sorted so repeated runs produce identical files.
func writeTable(fileName string, table epipred.ScoreTable) {
	w, err := os.Create(fileName)
	if err != nil {
		ERROR.Fatalln(err)
	}
	defer w.Close()

	type row struct {
		allele  string
		metric  string
		peptide string
		value   float64
	}
	rows := []row{}
	for a, metrics := range table {
		for m, vals := range metrics {
			for p, v := range vals {
				rows = append(rows, row{a.Name(), string(m), p.Seq, v})
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
