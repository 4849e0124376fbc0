package satchel

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Logger is the logging capability. Components never log through
// globals; everything that logs takes a Logger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NewLogger builds a zap backed Logger. Production mode switches
// to the sampling JSON config.
func NewLogger(production bool) (Logger, error) {
	var base *zap.Logger
	var err error

	if production {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, errors.Wrap(err, "could not initialize zap logger")
	}

	return &zapLogger{base: base.Sugar()}, nil
}

type zapLogger struct {
	base *zap.SugaredLogger
}

func (l *zapLogger) Debugf(format string, args ...interface{}) {
	l.base.Debugf(format, args...)
}

func (l *zapLogger) Infof(format string, args ...interface{}) {
	l.base.Infof(format, args...)
}

func (l *zapLogger) Warnf(format string, args ...interface{}) {
	l.base.Warnf(format, args...)
}

func (l *zapLogger) Errorf(format string, args ...interface{}) {
	l.base.Errorf(format, args...)
}

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
