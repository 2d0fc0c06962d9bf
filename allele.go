package epipred

import (
	"fmt"
	"strings"
)

// An Allele identifies one immune-receptor variant: an HLA type or a mouse
// H-2 haplotype. Identity is the caller's pointer; batching and parsing work
// on derived string forms, and results are re-keyed back to the original
// *Allele values.
type Allele struct {
	Locus     string // "A", "B", "DRB1", ...; for mouse, the H-2 locus letter ("D", "K").
	Supertype string // "02" in A*02:01; empty for mouse alleles.
	Subtype   string // "01" in A*02:01; for mouse, the haplotype letter ("b", "d").
	Mouse     bool

	// Beta holds the beta chain of a combined class II alpha/beta pair;
	// the receiver then holds the alpha chain.
	Beta *Allele

	// raw carries a tool-private allele name that does not follow any of
	// the known naming conventions. When set, all renderings return it
	// verbatim.
	raw string
}

// OpaqueAllele wraps a tool-private allele name that cannot be decomposed
// into locus/supertype/subtype. It renders as itself under every naming
// convention.
func OpaqueAllele(name string) *Allele {
	return &Allele{raw: name}
}

// Name returns the canonical display form: "A*02:01", "DRB1*01:01",
// "H-2-Db", or "DQA1*05:01/DQB1*03:01" for a combined pair.
func (a *Allele) Name() string {
	if a.raw != "" {
		return a.raw
	}
	if a.Beta != nil {
		alpha := *a
		alpha.Beta = nil
		return alpha.Name() + "/" + a.Beta.Name()
	}
	if a.Mouse {
		return "H-2-" + a.Locus + a.Subtype
	}
	return a.Locus + "*" + a.Supertype + ":" + a.Subtype
}

// ParseAllele decomposes an allele name in canonical or tool form.
// Accepted shapes: "A*02:01", "HLA-A02:01", "HLA-A0201", "HLA-DRB1_0101",
// "H-2-Db", "DQA1*05:01/DQB1*03:01", "HLA-DQA10501-DQB10301".
func ParseAllele(s string) (*Allele, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty allele name")
	}
	if strings.HasPrefix(s, "H-2-") {
		rest := strings.TrimPrefix(s, "H-2-")
		if len(rest) < 2 {
			return nil, fmt.Errorf("bad mouse allele %q", s)
		}
		return &Allele{Locus: rest[:1], Subtype: rest[1:], Mouse: true}, nil
	}
	body := strings.TrimPrefix(s, "HLA-")
	if i := strings.IndexAny(body, "/-"); i >= 0 {
		alpha, err := parseChain(body[:i])
		if err != nil {
			return nil, fmt.Errorf("bad combined allele %q: %v", s, err)
		}
		beta, err := parseChain(body[i+1:])
		if err != nil {
			return nil, fmt.Errorf("bad combined allele %q: %v", s, err)
		}
		alpha.Beta = beta
		return alpha, nil
	}
	a, err := parseChain(body)
	if err != nil {
		return nil, fmt.Errorf("bad allele %q: %v", s, err)
	}
	return a, nil
}

// parseChain handles a single class I or class II chain in "A*02:01",
// "A02:01", "A0201" or "DRB1_0101" form.
func parseChain(s string) (*Allele, error) {
	if i := strings.Index(s, "*"); i >= 0 {
		locus := s[:i]
		rest := s[i+1:]
		j := strings.Index(rest, ":")
		if locus == "" || j <= 0 || j == len(rest)-1 {
			return nil, fmt.Errorf("want locus*super:sub")
		}
		return &Allele{Locus: locus, Supertype: rest[:j], Subtype: rest[j+1:]}, nil
	}
	if i := strings.Index(s, "_"); i >= 0 {
		locus := s[:i]
		digits := s[i+1:]
		if locus == "" || len(digits) < 4 {
			return nil, fmt.Errorf("want locus_supersub")
		}
		return &Allele{Locus: locus, Supertype: digits[:2], Subtype: digits[2:]}, nil
	}
	if i := strings.Index(s, ":"); i >= 0 {
		head, sub := s[:i], s[i+1:]
		if len(head) < 3 || sub == "" {
			return nil, fmt.Errorf("want locussuper:sub")
		}
		return &Allele{Locus: head[:len(head)-2], Supertype: head[len(head)-2:], Subtype: sub}, nil
	}
	// Compact form: the last four characters are supertype+subtype.
	if len(s) < 5 {
		return nil, fmt.Errorf("too short for a compact form")
	}
	return &Allele{Locus: s[:len(s)-4], Supertype: s[len(s)-4 : len(s)-2], Subtype: s[len(s)-2:]}, nil
}

// A Representer renders an Allele in one tool family's naming convention.
type Representer func(a *Allele) string

// RepresenterByName resolves a naming convention declared in a ToolSpec.
func RepresenterByName(name string) (Representer, error) {
	r, found := representers[name]
	if !found {
		return nil, fmt.Errorf("unknown allele representer %q", name)
	}
	return r, nil
}

var representers = map[string]Representer{
	"colon":      repColon,      // HLA-A02:01
	"compact":    repCompact,    // HLA-A0201
	"bare":       repBare,       // A0201 (netMHC 3.x style)
	"underscore": repUnderscore, // HLA-DRB1_0101 (class II)
}

func repColon(a *Allele) string {
	if s, done := repSpecial(a); done {
		return s
	}
	return "HLA-" + a.Locus + a.Supertype + ":" + a.Subtype
}

func repCompact(a *Allele) string {
	if s, done := repSpecial(a); done {
		return s
	}
	return "HLA-" + a.Locus + a.Supertype + a.Subtype
}

func repBare(a *Allele) string {
	if s, done := repSpecial(a); done {
		return s
	}
	return a.Locus + a.Supertype + a.Subtype
}

func repUnderscore(a *Allele) string {
	if s, done := repSpecial(a); done {
		return s
	}
	return "HLA-" + a.Locus + "_" + a.Supertype + a.Subtype
}

// repSpecial handles the cases shared by every convention: opaque names,
// mouse haplotypes, and combined class II pairs.
func repSpecial(a *Allele) (string, bool) {
	if a.raw != "" {
		return a.raw, true
	}
	if a.Beta != nil {
		alpha := *a
		alpha.Beta = nil
		return "HLA-" + alpha.Locus + alpha.Supertype + alpha.Subtype +
			"-" + a.Beta.Locus + a.Beta.Supertype + a.Beta.Subtype, true
	}
	if a.Mouse {
		return "H-2-" + a.Locus + a.Subtype, true
	}
	return "", false
}
