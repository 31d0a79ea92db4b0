package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus defaults,
// so library callers that never call Init still get a working logger.
var Log = logrus.New()

// Init configures the global logger from the environment.
// Call it once at startup (main, TestMain).
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput is Init with an explicit sink.
func InitWithOutput(out io.Writer) {
	// LOG_LEVEL: "debug" for sweep-level tracing, "info" otherwise.
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// LOG_FORMAT: "json" for collection, text for local runs.
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	Log.SetOutput(out)
}

// Component returns an entry tagged with the subsystem name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
