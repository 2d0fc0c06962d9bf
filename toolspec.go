package epipred

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/BurntSushi/toml"
)

// A ToolSpec is the static description of one external predictor: how to
// invoke it, which alleles and peptide lengths it accepts, and how to read
// what it writes. Adding a tool version is adding a record, not code.
type ToolSpec struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`

	// Command is the invocation template. It may use the placeholders
	// {peptides}, {alleles}, {out}, {options} and {length}; unused ones
	// are simply not substituted into anything.
	Command string `toml:"command"`

	// VersionCmd, when non-empty, is a command whose trimmed combined
	// output reports the installed tool's version. Several wrapped tools
	// have no such probe.
	VersionCmd string `toml:"version_command"`

	Lengths []int    `toml:"lengths"` // supported peptide lengths
	Alleles []string `toml:"alleles"` // supported alleles, in tool form

	// MaxAlleles caps how many alleles go into one invocation. Zero means
	// the conventional tool limit of 50.
	MaxAlleles int `toml:"max_alleles"`

	// Representer names the allele naming convention: "colon", "compact",
	// "bare" or "underscore".
	Representer string `toml:"representer"`

	Parser ParserSpec `toml:"parser"`

	rep       Representer
	alleleSet map[string]bool
}

// ParserSpec selects and configures the output-format family of a tool.
type ParserSpec struct {
	Family string     `toml:"family"` // "wide" or "long"
	Wide   WideLayout `toml:"wide"`
	Long   LongLayout `toml:"long"`
}

const defaultMaxAlleles = 50

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z]+)\}`)

var knownPlaceholders = map[string]bool{
	"peptides": true,
	"alleles":  true,
	"out":      true,
	"options":  true,
	"length":   true,
}

// validate checks the record once, at registration, so that rendering and
// parsing never meet a malformed spec.
func (s *ToolSpec) validate() error {
	if s.Name == "" || s.Version == "" || s.Command == "" {
		return fmt.Errorf("tool spec needs name, version and command")
	}
	for _, cmd := range []string{s.Command, s.VersionCmd} {
		for _, m := range placeholderRe.FindAllStringSubmatch(cmd, -1) {
			if !knownPlaceholders[m[1]] {
				return fmt.Errorf("%s: unknown placeholder {%s} in command template", s.Name, m[1])
			}
		}
	}
	if len(s.Lengths) == 0 {
		return fmt.Errorf("%s: no supported peptide lengths", s.Name)
	}
	if len(s.Alleles) == 0 {
		return fmt.Errorf("%s: no supported alleles", s.Name)
	}
	if s.MaxAlleles == 0 {
		s.MaxAlleles = defaultMaxAlleles
	}
	if s.MaxAlleles < 0 {
		return fmt.Errorf("%s: bad max_alleles %d", s.Name, s.MaxAlleles)
	}

	rep, err := RepresenterByName(s.Representer)
	if err != nil {
		return fmt.Errorf("%s: %v", s.Name, err)
	}
	s.rep = rep

	switch s.Parser.Family {
	case "wide":
		if err := s.Parser.Wide.validate(); err != nil {
			return fmt.Errorf("%s: %v", s.Name, err)
		}
	case "long":
		if err := s.Parser.Long.validate(); err != nil {
			return fmt.Errorf("%s: %v", s.Name, err)
		}
	default:
		return fmt.Errorf("%s: unknown parser family %q", s.Name, s.Parser.Family)
	}

	s.alleleSet = make(map[string]bool)
	for _, a := range s.Alleles {
		s.alleleSet[a] = true
	}
	return nil
}

// NewParser returns the parser strategy the spec's layout configures.
func (s *ToolSpec) NewParser() ResultParser {
	if s.Parser.Family == "long" {
		return LongParser{Layout: s.Parser.Long}
	}
	return WideParser{Layout: s.Parser.Wide}
}

func (s *ToolSpec) SupportsLength(l int) bool {
	for _, n := range s.Lengths {
		if n == l {
			return true
		}
	}
	return false
}

// LengthRange returns the smallest and largest supported peptide length.
func (s *ToolSpec) LengthRange() (min, max int) {
	min, max = s.Lengths[0], s.Lengths[0]
	for _, n := range s.Lengths[1:] {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	return min, max
}

// allAlleles synthesizes the full supported-allele set as domain objects,
// for the default-to-all behavior when a caller requests no alleles.
// Tool-private names that do not round-trip through ParseAllele are carried
// as opaque alleles.
func (s *ToolSpec) allAlleles() []*Allele {
	alleles := make([]*Allele, 0, len(s.Alleles))
	for _, name := range s.Alleles {
		a, err := ParseAllele(name)
		if err != nil || s.rep(a) != name {
			a = OpaqueAllele(name)
		}
		alleles = append(alleles, a)
	}
	return alleles
}

// Registry of available tools.

var tools = make(map[string]*ToolSpec)

// RegisterTool validates a spec and adds it to the registry, replacing any
// spec of the same name.
func RegisterTool(s *ToolSpec) error {
	if err := s.validate(); err != nil {
		return err
	}
	tools[s.Name] = s
	return nil
}

// LookupTool returns a registered spec by name.
func LookupTool(name string) (*ToolSpec, error) {
	s, found := tools[name]
	if !found {
		return nil, fmt.Errorf("unknown tool %q (have: %v)", name, Tools())
	}
	return s, nil
}

// Tools lists the registered tool names, sorted.
func Tools() []string {
	names := []string{}
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadToolSpec reads a ToolSpec from a TOML file and registers it. The file
// goes through the same validation as built-in specs.
func LoadToolSpec(path string) (*ToolSpec, error) {
	s := &ToolSpec{}
	if _, err := toml.DecodeFile(path, s); err != nil {
		return nil, fmt.Errorf("tool spec %s: %v", path, err)
	}
	if err := RegisterTool(s); err != nil {
		return nil, fmt.Errorf("tool spec %s: %v", path, err)
	}
	return s, nil
}
