// Copyright 2019 eBay Inc.
// Primary authors: Simon Fell, Diego Ongaro,
//                  Raymond Kroeker, and Sathish Kandasamy.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package debuglog configures logrus the same way for every binary.
package debuglog

import (
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options control Configure.
type Options struct {
	// The logger to configure. If nil, the logrus standard logger is used.
	Logger *logrus.Logger
	// Emit color codes even when the output isn't a terminal.
	ForceColors bool
	// Log at debug level and above, instead of info and above.
	Debug bool
}

// Configure sets up the logger with a text formatter, UTC timestamps with
// microseconds, and caller file names relative to the repository root.
func Configure(options Options) {
	logger := options.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     options.ForceColors,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000 MST",
	})
	logger.SetReportCaller(true)
	logger.AddHook(utcHook{})
	logger.AddHook(newFilenameHook())
	if options.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.WithFields(logrus.Fields{
		"forceColors": options.ForceColors,
	}).Info("Initialized Logrus")
}

// utcHook converts log entry timestamps to UTC.
type utcHook struct{}

func (utcHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (utcHook) Fire(entry *logrus.Entry) error {
	entry.Time = entry.Time.UTC()
	return nil
}

// filenameHook strips the repository root from caller file names.
type filenameHook struct {
	root string
}

func newFilenameHook() *filenameHook {
	_, thisFile, _, _ := runtime.Caller(0)
	return &filenameHook{
		root: strings.TrimSuffix(thisFile, "util/debuglog/setup.go"),
	}
}

func (h *filenameHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *filenameHook) Fire(entry *logrus.Entry) error {
	if entry.HasCaller() {
		entry.Caller.File = strings.TrimPrefix(entry.Caller.File, h.root)
	}
	return nil
}
