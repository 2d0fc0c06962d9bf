package main

import (
	"flag"

	"github.com/mingzhi/epipred"
)

// Command for probing installed tool versions against the declared ones.
type cmdCheck struct {
	cmdConfig // embedded cmdConfig.
}

func (cmd *cmdCheck) Flags(fs *flag.FlagSet) *flag.FlagSet {
	return cmd.cmdConfig.Flags(fs)
}

func (cmd *cmdCheck) Run(args []string) {
	cmd.ParseConfig()

	names := epipred.Tools()
	if cmd.toolName != "" {
		names = []string{cmd.toolName}
	}

	mismatch := false
	for _, name := range names {
		spec, err := epipred.LookupTool(name)
		if err != nil {
			ERROR.Fatalln(err)
		}
		reported, ok := spec.ExternalVersion(cmd.execPath)
		switch {
		case !ok:
			INFO.Printf("%s: no version probe available, declared %s\n", spec.Name, spec.Version)
		case reported == spec.Version:
			INFO.Printf("%s: version %s ok\n", spec.Name, spec.Version)
		default:
			WARN.Printf("%s: declared %s but installed tool reports %s\n",
				spec.Name, spec.Version, reported)
			mismatch = true
		}
	}
	if mismatch {
		ERROR.Fatalln("version drift detected")
	}
}
