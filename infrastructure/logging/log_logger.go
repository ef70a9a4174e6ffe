package logging

import (
	"log"
	"sensocket/application/logging"
)

type LogLogger struct {
	prefix string
}

func NewLogLogger() logging.Logger {
	return &LogLogger{}
}

// NewPrefixedLogger tags every line, e.g. with the client mode.
func NewPrefixedLogger(prefix string) logging.Logger {
	return &LogLogger{prefix: "[" + prefix + "] "}
}

func (l LogLogger) Printf(format string, v ...any) {
	log.Printf(l.prefix+format, v...)
}
