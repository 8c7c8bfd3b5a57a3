package logging

import (
	"io"
	"log"
	"os"
	"sync"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	debug   *log.Logger
	info    *log.Logger
	warning *log.Logger
	error   *log.Logger

	mx     sync.Mutex
	out    io.Writer = os.Stderr
	active           = LevelWarning
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debug = log.New(io.Discard, "D ", flags)
	info = log.New(io.Discard, "I ", flags)
	warning = log.New(io.Discard, "W ", flags)
	error = log.New(io.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// SetLevel enables all loggers at or above the given level.
func SetLevel(l Level) {
	mx.Lock()
	defer mx.Unlock()
	active = l
	apply()
}

// SetOutput redirects all enabled loggers to w.
func SetOutput(w io.Writer) {
	mx.Lock()
	defer mx.Unlock()
	out = w
	apply()
}

func apply() {
	loggers := []*log.Logger{debug, info, warning, error}
	for i, l := range loggers {
		if Level(i) >= active {
			l.SetOutput(out)
		} else {
			l.SetOutput(io.Discard)
		}
	}
}

func Debug(msg string, v ...interface{}) {
	debug.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	info.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warning.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	error.Printf(msg, v...)
}
