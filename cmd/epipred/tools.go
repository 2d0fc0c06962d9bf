package main

import (
	"flag"
	"fmt"

	"github.com/mingzhi/epipred"
)

// Command for listing the registered predictors.
type cmdTools struct {
	cmdConfig // embedded cmdConfig.
}

func (cmd *cmdTools) Flags(fs *flag.FlagSet) *flag.FlagSet {
	return cmd.cmdConfig.Flags(fs)
}

func (cmd *cmdTools) Run(args []string) {
	cmd.ParseConfig()
	for _, name := range epipred.Tools() {
		spec, err := epipred.LookupTool(name)
		if err != nil {
			ERROR.Fatalln(err)
		}
		fmt.Printf("%s\tversion %s\tlengths %v\t%d alleles\tmax %d per run\n",
			spec.Name, spec.Version, spec.Lengths, len(spec.Alleles), spec.MaxAlleles)
	}
}
