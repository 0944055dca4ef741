package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// sessionLogger is built from the global flags before any command runs.
var sessionLogger = log.New(io.Discard)

// logFile is the open --log-file, closed after the command finishes.
var logFile *os.File

// newLogger builds the session logger. The terminal belongs to the game,
// so logs are discarded unless a file (or "-" for stderr) is given.
func newLogger(path, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}

	var w io.Writer
	switch path {
	case "":
		w = io.Discard
	case "-":
		w = os.Stderr
	default:
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("log: failed to open %s: %w", path, err)
		}
		logFile = f
		w = f
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           lvl,
	}), nil
}

func closeLog() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
