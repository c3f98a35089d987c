// Package log is a thin wrapper around logrus shared by all selectdrop packages.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

// Fields is an alias so callers do not import logrus directly
type Fields = logrus.Fields

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetOutput redirects log output, e.g. to a file while the TUI owns the terminal
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetDebug toggles debug level logging
func SetDebug(debug bool) {
	if debug {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.InfoLevel)
}

// F builds a single field for LogWithFields
func F(key string, value interface{}) Fields {
	return Fields{key: value}
}

// LogWithFields merges the given fields into one entry
func LogWithFields(fields ...Fields) *logrus.Entry {
	merged := Fields{}
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return logger.WithFields(merged)
}

func Info(args ...interface{})                  { logger.Info(args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
