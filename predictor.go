package epipred

import (
	"fmt"
	"os"
	"strings"

	pb "gopkg.in/cheggaaa/pb.v1"
)

// A Predictor drives one external tool over peptides and alleles and folds
// every invocation's output into a single ScoreTable. The zero value is not
// usable; start from NewPredictor and adjust fields before Predict.
type Predictor struct {
	Spec *ToolSpec

	// Exec, when set, replaces the leading executable token of the
	// command and version-probe templates, keeping every flag.
	Exec string

	// Options is substituted for {options} in the command template.
	Options string

	// ChunkSize caps how many peptides go into one input file. Zero
	// means one file per length group.
	ChunkSize int

	// Progress draws a progress bar over the planned invocations.
	Progress bool
}

// NewPredictor builds a predictor for a registered tool.
func NewPredictor(tool string) (*Predictor, error) {
	spec, err := LookupTool(tool)
	if err != nil {
		return nil, err
	}
	return &Predictor{Spec: spec}, nil
}

// Result is one Predict call's outcome: the merged table plus the
// structured warnings accumulated while planning the run.
type Result struct {
	Table    ScoreTable
	Warnings []Warning
}

// Predict runs the whole pipeline: version guard, allele batching, peptide
// length grouping and chunking, then one synchronous tool invocation per
// (allele batch, peptide chunk) cell, merged into one table. alleles may be
// empty, in which case the tool's entire supported set is requested.
// Unsupported alleles and lengths are skipped with warnings; any tool,
// process or version failure aborts the whole call.
func (p *Predictor) Predict(peptides []*Peptide, alleles []*Allele) (*Result, error) {
	spec := p.Spec

	if err := checkVersion(spec, p.Exec); err != nil {
		return nil, err
	}

	command := spec.Command
	if p.Exec != "" {
		c, err := overrideExec(command, p.Exec)
		if err != nil {
			return nil, err
		}
		command = c
	}

	if len(alleles) == 0 {
		alleles = spec.allAlleles()
	}

	groups, byAllele, warns := batchAlleles(alleles, spec)
	seqs, byPep := dedupPeptides(peptides)
	lengthGroups, lengths, lengthWarns := groupByLength(seqs, spec)
	warns = append(warns, lengthWarns...)
	for _, w := range warns {
		Warn.Println(w)
	}

	type job struct {
		alleles []string
		seqs    []string
		length  int
	}
	jobs := []job{}
	for _, g := range groups {
		for _, l := range lengths {
			for _, chunk := range chunkSeqs(lengthGroups[l], p.ChunkSize) {
				jobs = append(jobs, job{alleles: g, seqs: chunk, length: l})
			}
		}
	}

	var bar *pb.ProgressBar
	if p.Progress && len(jobs) > 0 {
		bar = pb.StartNew(len(jobs))
		defer bar.Finish()
	}

	table := make(ScoreTable)
	for _, j := range jobs {
		raw, err := p.runJob(command, j.alleles, j.seqs, j.length)
		if err != nil {
			return nil, err
		}
		table.merge(raw, byAllele, byPep)
		if bar != nil {
			bar.Increment()
		}
	}

	if table.Len() == 0 {
		attempted := []string{}
		for _, g := range groups {
			attempted = append(attempted, g...)
		}
		return nil, &NoResultError{Tool: spec.Name, Alleles: attempted, Lengths: lengths}
	}
	return &Result{Table: table, Warnings: warns}, nil
}

// runJob materializes one peptide chunk to disk, renders and executes the
// command, and parses the output file. Both temp files are removed on every
// path out of here.
func (p *Predictor) runJob(command string, alleles, seqs []string, length int) (RawResult, error) {
	pepFile, err := writePeptideFile(seqs)
	if err != nil {
		return nil, err
	}
	defer os.Remove(pepFile)

	outFile, err := tempPath("epipred-out-")
	if err != nil {
		return nil, err
	}
	defer os.Remove(outFile)

	line := renderCommand(command, pepFile, strings.Join(alleles, ","), outFile, p.Options, length)
	Info.Println(line)
	if err := runCommand(line, outFile); err != nil {
		return nil, err
	}
	return p.Spec.NewParser().Parse(outFile, alleles)
}

// writePeptideFile writes one chunk as newline-separated raw sequences, no
// header, and returns the file's path.
func writePeptideFile(seqs []string) (string, error) {
	f, err := os.CreateTemp("", "epipred-pep-")
	if err != nil {
		return "", err
	}
	for _, s := range seqs {
		if _, err := fmt.Fprintln(f, s); err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", err
		}
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// tempPath reserves a path for the tool to write into. The file starts
// empty; runCommand's non-empty check catches tools that never touch it.
func tempPath(prefix string) (string, error) {
	f, err := os.CreateTemp("", prefix)
	if err != nil {
		return "", err
	}
	f.Close()
	return f.Name(), nil
}
