// Package log is a small logrus facade. Nothing is written until Setup enables it.
package log

import (
	"io"

	"github.com/noodlekit/noodle/key"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var enabled bool

// Setup configures logrus from viper and directs it to w. When logs.write is false every
// call in this package is a no-op.
func Setup(w io.Writer) {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return
	}
	logrus.SetOutput(w)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// Enabled reports whether logging is switched on.
func Enabled() bool {
	return enabled
}

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}

// Debugw logs msg at debug level with structured fields.
func Debugw(msg string, fields logrus.Fields) {
	if enabled {
		logrus.WithFields(fields).Debug(msg)
	}
}
