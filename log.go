package dtresolve

import (
	"github.com/sirupsen/logrus"
)

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package logger. Call it before resolving from
// multiple goroutines; nil restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	log = l
}
