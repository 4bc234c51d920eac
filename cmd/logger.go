package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// logger reports diagnostics on stderr, warnings only until Setup is called.
var logger = newLogger(os.Stderr, "warn")

// newLogger returns a console logger at level: debug, info, warn or error.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl := zerolog.WarnLevel
	switch level {
	case "debug":
		lvl = zerolog.DebugLevel
	case "info":
		lvl = zerolog.InfoLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}
