package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/rivegen/internal/log"
)

// rawConsole receives raw dumps at trace level, next to the trace records
// that go to stdout.
var rawConsole io.Writer = os.Stdout

// Open builds the process logger and the raw dump logger from the log flags.
// The returned func closes every file opened for them.
func (l Log) Open() (*slog.Logger, log.RawLogger, func(), error) {
	logger, closers, err := log.SetupLogger(l.Level, l.File)
	if err != nil {
		return nil, nil, nil, err
	}
	closeAll := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	w, c, err := l.rawSink(rawConsole)
	if err != nil {
		// Raw dumps are a debugging aid; generation continues without them.
		logger.Error("Failed to open raw log file", "file", l.RawFile, "error", err)
	}
	if c != nil {
		closers = append(closers, c)
	}
	return logger, log.NewRaw(w), closeAll, nil
}

// rawSink picks where undecodable input is dumped: the raw file when set,
// console at trace level, nowhere otherwise.
func (l Log) rawSink(console io.Writer) (io.Writer, io.Closer, error) {
	switch {
	case l.RawFile != "":
		f, err := os.OpenFile(l.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open raw log file: %w", err)
		}
		return f, f, nil
	case log.ParseLevel(l.Level) <= log.LevelTrace:
		return console, nil, nil
	default:
		return nil, nil, nil
	}
}
