package valuescale

import (
	"os"

	"github.com/sirupsen/logrus"
)

// logger receives the debug trace of auto-scaling, rejected scroll and
// zoom requests and calibration fallbacks.
var logger logrus.FieldLogger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Level = logrus.WarnLevel
	return l
}

// SetLogger replaces the package logger. A nil l restores the default
// logger which only reports warnings.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = newDefaultLogger()
	}
	logger = l
}

// debugScale logs the state of s with the given message.
func debugScale(s *ValueScale, msg string, fields logrus.Fields) {
	entry := logger.WithFields(fields)
	if s.resolved {
		entry = entry.WithField("visible", s.visible.String())
	} else {
		entry = entry.WithField("visible", "unresolved")
	}
	entry.Debug(msg)
}
