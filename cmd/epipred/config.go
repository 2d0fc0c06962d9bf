package main

import (
	"flag"
	"path/filepath"

	"github.com/mingzhi/epipred"
	"github.com/spf13/viper"
)

// Config to read flags and the workspace configure file.
type cmdConfig struct {
	// Flags.
	workspace *string // workspace.
	config    *string // configure file name.
	tool      *string // tool name, overrides the configure file.

	// Settings from the configure file.
	toolName string // predictor to run.
	specBase string // folder with extra tool specs in TOML.
	execPath string // alternate executable path.
	options  string // free-form options passed to the tool.
}

func (cmd *cmdConfig) Flags(fs *flag.FlagSet) *flag.FlagSet {
	cmd.workspace = fs.String("w", "", "workspace.")
	cmd.config = fs.String("c", "config", "configure file name (YAML), without extension.")
	cmd.tool = fs.String("t", "", "tool name, overriding the configure file.")
	return fs
}

// Parse configs and load any extra tool specs.
func (cmd *cmdConfig) ParseConfig() {
	viper.SetConfigName(*cmd.config)
	viper.AddConfigPath(*cmd.workspace)
	viper.ReadInConfig()

	cmd.toolName = viper.GetString("predict.tool")
	cmd.specBase = viper.GetString("predict.specs")
	cmd.execPath = viper.GetString("predict.exec")
	cmd.options = viper.GetString("predict.options")
	if *cmd.tool != "" {
		cmd.toolName = *cmd.tool
	}

	registerLogger()
	cmd.loadSpecs()
}

// loadSpecs registers every TOML tool spec found in the configured folder.
func (cmd *cmdConfig) loadSpecs() {
	if cmd.specBase == "" {
		return
	}
	pattern := filepath.Join(*cmd.workspace, cmd.specBase, "*.toml")
	files, err := filepath.Glob(pattern)
	if err != nil {
		ERROR.Fatalln(err)
	}
	for _, f := range files {
		spec, err := epipred.LoadToolSpec(f)
		if err != nil {
			ERROR.Fatalln(err)
		}
		INFO.Printf("loaded tool spec %s %s from %s\n", spec.Name, spec.Version, f)
	}
}
