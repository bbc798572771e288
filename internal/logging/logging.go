package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var root = newRoot()

func newRoot() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	l.SetLevel(logrus.InfoLevel)
	if os.Getenv("LOOKOUT_DEBUG") != "" {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// NewLogger returns an entry tagged with the given component name.
func NewLogger(component string) *logrus.Entry {
	return root.WithField("component", component)
}

// SetDebug raises the process log level to debug.
func SetDebug() {
	root.SetLevel(logrus.DebugLevel)
}
