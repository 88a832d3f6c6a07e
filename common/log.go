/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package common contains logging facilities shared by the subpackages.
package common

import (
	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used throughout the engine. Call sites pass a
// printf-style format and its arguments, the way the rest of this codebase logs.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// Log is the package-level logger used by the order package. Replace it
// with SetLogger to route engine diagnostics into a host application's own logger.
var Log Logger = newLogrusLogger()

// SetLogger replaces the package-level logger. Passing nil restores the default.
func SetLogger(l Logger) {
	if l == nil {
		l = newLogrusLogger()
	}
	Log = l
}

type logrusLogger struct {
	entry *logrus.Logger
}

func newLogrusLogger() *logrusLogger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return &logrusLogger{entry: l}
}

func (l *logrusLogger) Error(format string, args ...interface{})   { l.entry.Errorf(format, args...) }
func (l *logrusLogger) Warning(format string, args ...interface{}) { l.entry.Warnf(format, args...) }
func (l *logrusLogger) Info(format string, args ...interface{})    { l.entry.Infof(format, args...) }
func (l *logrusLogger) Debug(format string, args ...interface{})   { l.entry.Debugf(format, args...) }
