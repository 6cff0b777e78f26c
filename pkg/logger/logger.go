package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It points at the logrus standard
// logger so it is usable before InitLogger runs (tests, package init).
var Log = logrus.StandardLogger()

func InitLogger(level string) {
	// Output to stdout instead of the default stderr
	Log.SetOutput(os.Stdout)

	// Set JSON formatter for structured logging
	Log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		Log.WithField("level", level).Warn("Unknown log level, falling back to info")
	}
	Log.SetLevel(lvl)
}
