package convert

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logLevels = map[int]logrus.Level{
	1: logrus.ErrorLevel,
	2: logrus.WarnLevel,
	3: logrus.InfoLevel,
	4: logrus.DebugLevel,
	5: logrus.TraceLevel,
}

// NewLogger returns a text logger writing to w.
func NewLogger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}

// SetLogLevel applies a [1-5] log level to logger. Unknown levels are ignored.
func SetLogLevel(logger *logrus.Logger, level int) {
	if l, ok := logLevels[level]; ok {
		logger.SetLevel(l)
	}
}
