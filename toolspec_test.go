package epipred

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func minimalSpec() *ToolSpec {
	return &ToolSpec{
		Name:        "mini",
		Version:     "1.0",
		Command:     "mini -p {peptides} -a {alleles} -o {out}",
		Lengths:     []int{9},
		Alleles:     []string{"HLA-A02:01"},
		Representer: "colon",
		Parser:      ParserSpec{Family: "long", Long: LongLayout{ScoreCol: 2, RankCol: -1}},
	}
}

func TestToolSpecValidate(t *testing.T) {
	s := minimalSpec()
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}
	if s.MaxAlleles != 50 {
		t.Errorf("MaxAlleles defaulted to %d, want 50", s.MaxAlleles)
	}
	if !s.SupportsLength(9) || s.SupportsLength(10) {
		t.Error("SupportsLength is wrong")
	}
}

func TestToolSpecValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ToolSpec)
		want   string
	}{
		{"unknown placeholder", func(s *ToolSpec) { s.Command = "mini {peptide} {out}" }, "placeholder"},
		{"placeholder in version command", func(s *ToolSpec) { s.VersionCmd = "mini {ver}" }, "placeholder"},
		{"no lengths", func(s *ToolSpec) { s.Lengths = nil }, "lengths"},
		{"no alleles", func(s *ToolSpec) { s.Alleles = nil }, "alleles"},
		{"bad representer", func(s *ToolSpec) { s.Representer = "shouty" }, "representer"},
		{"bad parser family", func(s *ToolSpec) { s.Parser.Family = "diagonal" }, "parser family"},
		{"bad transform", func(s *ToolSpec) { s.Parser.Long.Transform = "log10" }, "transform"},
		{"no command", func(s *ToolSpec) { s.Command = "" }, "command"},
	}
	for _, tt := range tests {
		s := minimalSpec()
		tt.mutate(s)
		err := s.validate()
		if err == nil {
			t.Errorf("%s: want error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}

func TestLengthRange(t *testing.T) {
	s := minimalSpec()
	s.Lengths = []int{10, 8, 9, 11}
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}
	min, max := s.LengthRange()
	if min != 8 || max != 11 {
		t.Errorf("LengthRange() = %d, %d", min, max)
	}
}

func TestLoadToolSpec(t *testing.T) {
	doc := `
name = "toytool"
version = "0.9"
command = "toytool -p {peptides} -a {alleles} -o {out} -l {length}"
lengths = [9, 10]
alleles = ["HLA-A02:01", "HLA-B07:02"]
representer = "colon"

[parser]
family = "long"

[parser.long]
skip_rows = 1
allele_col = 0
peptide_col = 1
score_col = 2
rank_col = -1
`
	path := filepath.Join(t.TempDir(), "toytool.toml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadToolSpec(path)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Name != "toytool" || spec.MaxAlleles != 50 {
		t.Errorf("loaded spec = %+v", spec)
	}
	if _, err := LookupTool("toytool"); err != nil {
		t.Errorf("loaded spec not registered: %v", err)
	}
}

func TestLoadToolSpecBad(t *testing.T) {
	doc := `
name = "brokentool"
version = "0.1"
command = "brokentool {wat}"
lengths = [9]
alleles = ["HLA-A02:01"]
representer = "colon"

[parser]
family = "long"
`
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadToolSpec(path); err == nil {
		t.Error("want validation error for unknown placeholder")
	}
}

func TestAllAllelesRoundTrip(t *testing.T) {
	s := minimalSpec()
	s.Alleles = []string{"HLA-A02:01", "H-2-Db", "BoLA-T2c"}
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}
	all := s.allAlleles()
	if len(all) != 3 {
		t.Fatalf("allAlleles() = %v", all)
	}
	for i, a := range all {
		if got := s.rep(a); got != s.Alleles[i] {
			t.Errorf("allele %d renders as %q, want %q", i, got, s.Alleles[i])
		}
	}
}
