package epipred

// A Warning records one non-fatal skip made while planning a run: an allele
// or a peptide length the tool does not support. Warnings are returned to
// the caller rather than only logged, so they can be inspected and asserted
// on directly.
type Warning struct {
	Kind    WarningKind
	Value   string // the offending allele name or length
	Context string
}

type WarningKind int

const (
	WarnUnsupportedAllele WarningKind = iota
	WarnUnsupportedLength
)

func (w Warning) String() string {
	switch w.Kind {
	case WarnUnsupportedAllele:
		return "unsupported allele " + w.Value + ": " + w.Context
	case WarnUnsupportedLength:
		return "unsupported peptide length " + w.Value + ": " + w.Context
	}
	return w.Value + ": " + w.Context
}

// batchAlleles renders each requested allele in the tool's naming convention
// and packs the supported ones into ordered groups of at most
// spec.MaxAlleles names. Unsupported alleles are dropped with a warning.
// The reverse map carries every emitted name back to its original *Allele
// for result re-keying; two objects rendering to the same name share one
// slot (the last wins).
func batchAlleles(alleles []*Allele, spec *ToolSpec) ([][]string, map[string]*Allele, []Warning) {
	groups := [][]string{}
	byName := make(map[string]*Allele)
	warns := []Warning{}

	group := []string{}
	for _, a := range alleles {
		name := spec.rep(a)
		if !spec.alleleSet[name] {
			warns = append(warns, Warning{
				Kind:    WarnUnsupportedAllele,
				Value:   a.Name(),
				Context: "not supported by " + spec.Name + " " + spec.Version,
			})
			continue
		}
		if _, seen := byName[name]; !seen {
			group = append(group, name)
			if len(group) == spec.MaxAlleles {
				groups = append(groups, group)
				group = []string{}
			}
		}
		byName[name] = a
	}
	if len(group) > 0 {
		groups = append(groups, group)
	}

	return groups, byName, warns
}
