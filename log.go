package epipred

import (
	"log"
	"os"
)

// Package loggers. Commands re-point these to their own writers.
var (
	Info = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warn = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
)
