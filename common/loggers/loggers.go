package loggers

import (
	"io"
	"io/ioutil"
	"log"
	"os"

	jww "github.com/spf13/jwalterweatherman"
)

// Logger is the logger used throughout the documentation tooling.
type Logger interface {
	Printf(format string, v ...any)
	Println(v ...any)
	Debug() *log.Logger
	Info() *log.Logger
	Warn() *log.Logger
	Error() *log.Logger
}

type logger struct {
	*jww.Notepad
}

func (l *logger) Printf(format string, v ...any) {
	l.FEEDBACK.Printf(format, v...)
}

func (l *logger) Println(v ...any) {
	l.FEEDBACK.Println(v...)
}

func (l *logger) Debug() *log.Logger {
	return l.DEBUG
}

func (l *logger) Info() *log.Logger {
	return l.INFO
}

func (l *logger) Warn() *log.Logger {
	return l.WARN
}

func (l *logger) Error() *log.Logger {
	return l.ERROR
}

// NewErrorLogger is a convenience function to create an error logger
// writing to Stdout.
func NewErrorLogger() Logger {
	return newLogger(jww.LevelError, jww.LevelError, os.Stdout, ioutil.Discard)
}

// NewBasicLoggerForWriter creates a new basic logger writing to w.
func NewBasicLoggerForWriter(t jww.Threshold, w io.Writer) Logger {
	return newLogger(t, jww.LevelError, w, ioutil.Discard)
}

func newLogger(stdoutThreshold, logThreshold jww.Threshold, outHandle, logHandle io.Writer) *logger {
	if logHandle == nil {
		logHandle = ioutil.Discard
	}
	if outHandle == nil {
		outHandle = ioutil.Discard
	}

	return &logger{
		Notepad: jww.NewNotepad(stdoutThreshold, logThreshold, outHandle, logHandle, "", log.Ldate|log.Ltime),
	}
}
