package main

import (
	"log"
	"os"

	"github.com/mingzhi/epipred"
	"github.com/rakyll/command"
)

var (
	INFO  *log.Logger
	WARN  *log.Logger
	ERROR *log.Logger
)

func main() {
	// Register loggers.
	INFO = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WARN = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ERROR = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	// Register commands.
	command.On("predict", "run a predictor over peptides and alleles", &cmdPredict{}, []string{})
	command.On("tools", "list registered predictors", &cmdTools{}, []string{})
	command.On("check", "probe installed tool versions against declared ones", &cmdCheck{}, []string{})
	command.On("plot", "boxplot scores per allele from a result table", &cmdPlot{}, []string{})
	// Parse and run commands.
	command.ParseAndRun()
}

func registerLogger() {
	epipred.Info = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	epipred.Warn = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
}
