package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

var (
	colorAlert = color.New(color.FgRed)
	colorWarn  = color.New(color.FgYellow)
	colorTitle = color.New(color.FgGreen)
)

// fatalf prints an error in red and exits with status 1.
func fatalf(format string, args ...any) {
	colorAlert.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// warnf prints a warning in yellow and continues.
func warnf(format string, args ...any) {
	colorWarn.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// newLogger returns a logger writing to path, or discarding everything when
// path is empty. The terminal belongs to the game while a round runs.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "frogger",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
