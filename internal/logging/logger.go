package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SetupParams struct {
	LogFileName   string
	LogToStderr   bool
	LogLevel      string
	LogFormatJSON bool
}

// Setup configures the global logrus logger. Logs never go to stdout, so
// they cannot mix with command output.
func Setup(params SetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))
	logrus.SetOutput(output(params))
}

// output picks stderr, the rotated log file, or both.
func output(params SetupParams) io.Writer {
	if params.LogFileName == "" {
		return os.Stderr
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		LocalTime:  true,
		Compress:   true,
	}

	if params.LogToStderr {
		return NewCombinedWriter(os.Stderr, lumberJackLogger)
	}
	return lumberJackLogger
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.WarnLevel
	}
}

// CombinedWriter writes to every underlying writer, continuing past
// failures and returning all of their errors.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{writers: writers}
}

func (w *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for _, wr := range w.writers {
		if _, werr := wr.Write(p); werr != nil {
			err = multierr.Combine(err, werr)
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
