// Copyright ©2026 The bíogo Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package logging provides logging wrappers.
//
// These wrappers standardize logging across the harness while using the
// sirupsen/logrus package underneath. Every entry carries the package and
// function of its caller.
package logging

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"

	"github.com/biogo/ordbench/internal/config"
)

// Log fields supported by the wrappers.
const (
	packageKey  = "package"
	functionKey = "function"
	errorKey    = "error"
)

// Fields holds structured values attached to a log entry.
type Fields = log.Fields

var logFile *os.File

// Up configures the standard logger from cfg. Logs go to stderr unless a log
// file is configured.
func Up(cfg config.LoggingConfig) (err error) {
	if cfg.JSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level := log.InfoLevel
	if cfg.Level != "" {
		level, err = log.ParseLevel(cfg.Level)
		if err != nil {
			return merry.Prependf(err, "logging: level %q", cfg.Level)
		}
	}
	log.SetLevel(level)

	if cfg.File != "" {
		logFile, err = os.OpenFile(cfg.File, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return merry.Prependf(err, "logging: opening %s", cfg.File)
		}
		log.SetOutput(logFile)
	}
	return nil
}

// Down closes the log file opened by Up, if any, and restores logging to stderr.
func Down() (err error) {
	if logFile != nil {
		log.SetOutput(os.Stderr)
		err = logFile.Close()
		logFile = nil
	}
	return
}

// SetOutput redirects the standard logger to w.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// callerFields returns the package and function of the caller skip frames
// above callerFields.
func callerFields(skip int) log.Fields {
	fields := log.Fields{}
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return fields
	}
	name := runtime.FuncForPC(pc).Name()

	// name is of the form path/to/pkg.Func or path/to/pkg.(*Type).Method.
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		fields[packageKey] = name[:i]
		fields[functionKey] = name[i+1:]
	} else {
		fields[functionKey] = name
	}
	return fields
}

func entry(fields log.Fields) *log.Entry {
	f := callerFields(2)
	for k, v := range fields {
		f[k] = v
	}
	return log.WithFields(f)
}

// Debugf logs at debug level.
func Debugf(format string, args ...interface{}) {
	entry(nil).Debugf(format, args...)
}

// Infof logs at info level.
func Infof(format string, args ...interface{}) {
	entry(nil).Infof(format, args...)
}

// Warnf logs at warning level.
func Warnf(format string, args ...interface{}) {
	entry(nil).Warnf(format, args...)
}

// Errorf logs at error level.
func Errorf(format string, args ...interface{}) {
	entry(nil).Errorf(format, args...)
}

// InfofWithFields logs at info level with the additional fields.
func InfofWithFields(fields Fields, format string, args ...interface{}) {
	entry(fields).Infof(format, args...)
}

// ErrorfWithError logs err at error level, adding err to the entry's fields.
func ErrorfWithError(err error, format string, args ...interface{}) {
	entry(log.Fields{errorKey: err}).Errorf(format, args...)
}

// Fatalf logs at fatal level and exits the process.
func Fatalf(format string, args ...interface{}) {
	entry(nil).Fatalf(format, args...)
}
