package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the logger used by every command. Debug level enables
// the per-stage messages (network loading, solver settings).
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          "maxbw",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
}

// stage logs the end of a pipeline step. Call it with the step start time;
// the elapsed duration is added as the "elapsed" field.
func stage(l *log.Logger, start time.Time, msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "elapsed", time.Since(start).Round(time.Microsecond))
	l.Info(msg, keyvals...)
}
