// Package log provides named, leveled loggers for the renderer and its tools.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logging verbosity accepted by SetLevel.
type Level = logging.Level

const (
	Debug  = logging.DEBUG
	Info   = logging.INFO
	Notice = logging.NOTICE
)

var (
	format = logging.MustStringFormatter(
		`%{color}[%{time:15:04:05.000}] [%{module}] %{level:.4s}%{color:reset} %{message}`,
	)
	backend logging.LeveledBackend
	level   = Notice
)

// Logger is the subset of go-logging the renderer writes through.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Noticef(format string, v ...interface{})
	Warningf(format string, v ...interface{})
}

// New returns the logger for a module; the module name tags every line.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all loggers to w, keeping the current level.
func SetSink(w io.Writer) {
	backend = logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format))
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
}

// SetLevel changes the verbosity of every module.
func SetLevel(l Level) {
	level = l
	backend.SetLevel(l, "")
}

func init() {
	SetSink(os.Stdout)
}
