package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger. It writes to stderr so command output on stdout
// stays clean.
var Log = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// SetVerbose switches between debug output and warnings only.
func SetVerbose(verbose bool) {
	if verbose {
		Log.SetLevel(logrus.DebugLevel)
		return
	}
	Log.SetLevel(logrus.WarnLevel)
}

// SetOutput redirects the shared logger, mostly useful in tests.
func SetOutput(out io.Writer) {
	Log.SetOutput(out)
}
