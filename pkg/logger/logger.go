// Package logger is the logrus front end shared by the recovery packages.
//
// Import it as `log`. Hosts configure the standard logger once through
// pkg/bootstrap; a Manager may be given its own *Logger instead.
package logger

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

type (
	Fields = logrus.Fields
	Entry  = logrus.Entry
	Logger = logrus.Logger
	Level  = logrus.Level

	JSONFormatter = logrus.JSONFormatter
)

const (
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

func StandardLogger() *Logger   { return logrus.StandardLogger() }
func New() *Logger              { return logrus.New() }
func NewEntry(l *Logger) *Entry { return logrus.NewEntry(l) }

func WithField(key string, value any) *Entry { return logrus.WithField(key, value) }
func WithFields(fields Fields) *Entry        { return logrus.WithFields(fields) }
func WithError(err error) *Entry             { return logrus.WithError(err) }

// WithTrace is EntryWithTrace on the standard logger.
func WithTrace(ctx context.Context) *Entry {
	return EntryWithTrace(logrus.NewEntry(logrus.StandardLogger()), ctx)
}

// EntryWithTrace binds ctx to e and adds trace_id and span_id when ctx
// carries a valid span.
func EntryWithTrace(e *Entry, ctx context.Context) *Entry {
	if ctx == nil {
		return e
	}
	e = e.WithContext(ctx)
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		e = e.WithFields(Fields{
			FieldTraceID: sc.TraceID().String(),
			FieldSpanID:  sc.SpanID().String(),
		})
	}
	return e
}

func Debug(args ...any) { logrus.Debug(args...) }
func Info(args ...any)  { logrus.Info(args...) }
func Warn(args ...any)  { logrus.Warn(args...) }
func Error(args ...any) { logrus.Error(args...) }
func Fatal(args ...any) { logrus.Fatal(args...) }

func Warnf(format string, args ...any)  { logrus.Warnf(format, args...) }
func Errorf(format string, args ...any) { logrus.Errorf(format, args...) }
