/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"devt.de/krotik/common/datautil"
	"devt.de/krotik/mucal/parser"
)

// Logger with loglevel support
// ============================

/*
LogLevel represents a logging level
*/
type LogLevel string

/*
Log levels
*/
const (
	Debug LogLevel = "debug"
	Info           = "info"
	Error          = "error"
)

/*
logLevelPriority assigns each log level a priority - messages with a priority
below the configured level are filtered.
*/
var logLevelPriority = map[LogLevel]int{
	Debug: 1,
	Info:  2,
	Error: 3,
}

/*
formatLogMessage produces the log line for a message of a given level. Info
messages are written as is, all other levels are prefixed with the level.
*/
func formatLogMessage(level LogLevel, m ...interface{}) string {
	if level == Info {
		return fmt.Sprint(m...)
	}

	return fmt.Sprintf("%v: %v", level, fmt.Sprint(m...))
}

/*
LogLevelLogger is a wrapper around loggers to add log level functionality.
*/
type LogLevelLogger struct {
	logger Logger
	level  LogLevel
}

/*
NewLogLevelLogger wraps a given logger and adds level based filtering
functionality.
*/
func NewLogLevelLogger(logger Logger, level string) (*LogLevelLogger, error) {
	llevel := LogLevel(strings.ToLower(level))

	if _, ok := logLevelPriority[llevel]; !ok {
		return nil, fmt.Errorf("Invalid log level: %v", llevel)
	}

	return &LogLevelLogger{
		logger,
		llevel,
	}, nil
}

/*
Level returns the current log level.
*/
func (ll *LogLevelLogger) Level() LogLevel {
	return ll.level
}

/*
shouldLog checks if a message of a given level passes the level filter.
*/
func (ll *LogLevelLogger) shouldLog(level LogLevel) bool {
	return logLevelPriority[level] >= logLevelPriority[ll.level]
}

/*
LogError adds a new error log message.
*/
func (ll *LogLevelLogger) LogError(m ...interface{}) {
	if ll.shouldLog(Error) {
		ll.logger.LogError(m...)
	}
}

/*
LogInfo adds a new info log message.
*/
func (ll *LogLevelLogger) LogInfo(m ...interface{}) {
	if ll.shouldLog(Info) {
		ll.logger.LogInfo(m...)
	}
}

/*
LogDebug adds a new debug log message.
*/
func (ll *LogLevelLogger) LogDebug(m ...interface{}) {
	if ll.shouldLog(Debug) {
		ll.logger.LogDebug(m...)
	}
}

// Logging implementations
// =======================

/*
MemoryLogger collects log messages in a RingBuffer in memory. Reset, Size and
String of the underlying RingBuffer operate on the collected log.
*/
type MemoryLogger struct {
	*datautil.RingBuffer
}

/*
NewMemoryLogger returns a new memory logger instance.
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{datautil.NewRingBuffer(size)}
}

/*
LogError adds a new error log message.
*/
func (ml *MemoryLogger) LogError(m ...interface{}) {
	ml.RingBuffer.Add(formatLogMessage(Error, m...))
}

/*
LogInfo adds a new info log message.
*/
func (ml *MemoryLogger) LogInfo(m ...interface{}) {
	ml.RingBuffer.Add(formatLogMessage(Info, m...))
}

/*
LogDebug adds a new debug log message.
*/
func (ml *MemoryLogger) LogDebug(m ...interface{}) {
	ml.RingBuffer.Add(formatLogMessage(Debug, m...))
}

/*
Slice returns the contents of the current log as a slice.
*/
func (ml *MemoryLogger) Slice() []string {
	var ret []string

	for _, lm := range ml.RingBuffer.Slice() {
		ret = append(ret, fmt.Sprint(lm))
	}

	return ret
}

/*
StreamLogger writes log messages to an output stream.
*/
type StreamLogger struct {
	out io.Writer
}

/*
NewStdOutLogger returns a logger instance which writes to stdout.
*/
func NewStdOutLogger() *StreamLogger {
	return &StreamLogger{os.Stdout}
}

/*
NewBufferLogger returns a logger instance which writes to a given buffer.
*/
func NewBufferLogger(buf io.Writer) *StreamLogger {
	return &StreamLogger{buf}
}

/*
LogError adds a new error log message.
*/
func (sl *StreamLogger) LogError(m ...interface{}) {
	fmt.Fprintln(sl.out, formatLogMessage(Error, m...))
}

/*
LogInfo adds a new info log message.
*/
func (sl *StreamLogger) LogInfo(m ...interface{}) {
	fmt.Fprintln(sl.out, formatLogMessage(Info, m...))
}

/*
LogDebug adds a new debug log message.
*/
func (sl *StreamLogger) LogDebug(m ...interface{}) {
	fmt.Fprintln(sl.out, formatLogMessage(Debug, m...))
}

/*
NullLogger discards all log messages.
*/
type NullLogger struct {
}

/*
NewNullLogger returns a null logger instance.
*/
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

/*
LogError discards the given log message.
*/
func (nl *NullLogger) LogError(m ...interface{}) {
}

/*
LogInfo discards the given log message.
*/
func (nl *NullLogger) LogInfo(m ...interface{}) {
}

/*
LogDebug discards the given log message.
*/
func (nl *NullLogger) LogDebug(m ...interface{}) {
}

// Evaluation diagnostics
// ======================

/*
LogConvergence adds a debug message about a converged fixpoint computation.
It reports the bound variable together with the position of its binder, the
number of iterations which were needed and the cardinality of the result.
*/
func LogConvergence(logger Logger, binder *parser.ASTNode, iterations int, cardinality int) {
	logger.LogDebug(fmt.Sprintf("Fixpoint for %v (%v) converged after %v iterations to %v states",
		binder.Children[0].Token.Val, binder.Token.PosString(), iterations, cardinality))
}
