package logging

import (
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

type sentryCapturer interface {
	CaptureException(exception error) *sentry.EventID
}

// SentryHook forwards log entries of the given levels to sentry.
type SentryHook struct {
	hub    sentryCapturer
	levels []logrus.Level
}

func NewSentryHook(hub sentryCapturer, levels []logrus.Level) *SentryHook {
	return &SentryHook{
		hub:    hub,
		levels: levels,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	if h.hub == nil {
		return nil
	}

	var err error
	if fieldErr, ok := entry.Data[logrus.ErrorKey].(error); ok {
		err = fmt.Errorf("%s: %w", entry.Message, fieldErr)
	} else {
		err = errors.New(entry.Message)
	}

	h.hub.CaptureException(err)
	return nil
}
