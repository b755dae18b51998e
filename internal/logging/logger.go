package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/workoutexplorer/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the package level logrus logger. Errors, fatals and panics
// are also sent to sentry when it is enabled.
func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	output, err := newOutput(params.LogFileName, params.LogToStdout)
	if err != nil {
		logrus.Errorf("log output: %s, writing logs only to STDOUT", err)
		output = os.Stdout
	}
	logrus.SetOutput(output)

	if !params.SentryEnabled {
		return
	}
	if params.SentryDSN == "" {
		logrus.Warnln("sentry enabled but no DSN set, skipping")
		return
	}

	if err := sentry.Init(sentry.ClientOptions{
		Environment:      params.Environment,
		Dsn:              params.SentryDSN,
		TracesSampleRate: 1.0,
		ServerName:       params.SentryServerName,
	}); err != nil {
		logrus.Errorf("sentry.Init: %s", err)
		return
	}

	logrus.AddHook(NewSentryHook(sentry.CurrentHub(), []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
	}))
	logrus.Infoln("sentry set up successfully")
}

// newOutput returns the writer logs go to: STDOUT when no file is set, otherwise
// a rotated file, optionally mirrored to STDOUT.
func newOutput(logFileName string, toStdout bool) (io.Writer, error) {
	if logFileName == "" {
		return os.Stdout, nil
	}

	if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	logsDir := filepath.Dir(logFileName)
	exists, err := pkg.PathExists(logsDir, true)
	if err != nil {
		return nil, fmt.Errorf("check logs dir: %w", err)
	}
	if !exists {
		if err := os.MkdirAll(logsDir, 0o755); err != nil {
			return nil, fmt.Errorf("create logs dir: %w", err)
		}
	}

	rotated := &lumberjack.Logger{
		Filename:   logFileName,
		MaxSize:    20, // megabytes
		MaxBackups: 10,
		LocalTime:  false, // false -> use UTC
		Compress:   true,
	}

	if toStdout {
		return pkg.NewCombinedWriter(os.Stdout, rotated), nil
	}
	return rotated, nil
}

// GetLevel parses the configured level, falling back to info.
func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
