package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid2048/internal/logging"
)

// newLogger builds the command logger. Without --log-file it writes to
// fallback; io.Discard keeps the terminal clean in play mode.
// The returned closer must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w := fallback
	closer := func() {}

	if flagLogFile != "" {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closer = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger, err := logging.New(w, logging.Options{Level: flagLogLevel, Prefix: prefix})
	if err != nil {
		closer()
		return nil, nil, err
	}
	return logger, closer, nil
}

// stderrLogger is the fallback for modes that do not own the terminal.
func stderrLogger(prefix string) (*log.Logger, func(), error) {
	return newLogger(os.Stderr, prefix)
}
