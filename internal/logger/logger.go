package logger

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"
)

type Logger struct {
	serviceName string
	minLevel    level
}

type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Service   string    `json:"service"`
	RequestID string    `json:"request_id,omitempty"`
	Message   string    `json:"message"`
	Error     string    `json:"error,omitempty"`
	Fields    Fields    `json:"fields,omitempty"`
}

type Fields map[string]any

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levelNames = map[level]string{
	levelDebug: "debug",
	levelInfo:  "info",
	levelWarn:  "warn",
	levelError: "error",
}

func parseLevel(s string) level {
	switch s {
	case "debug":
		return levelDebug
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Context key for request ID
type contextKey string

const RequestIDKey contextKey = "request_id"

// Global logger instance
var defaultLogger *Logger

// Init configures the default logger. Entries below minLevel are dropped.
func Init(serviceName, minLevel string) {
	defaultLogger = &Logger{
		serviceName: serviceName,
		minLevel:    parseLevel(minLevel),
	}
}

func (l *Logger) log(lvl level, ctx context.Context, message string, err error, fields Fields) {
	if lvl < l.minLevel {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     levelNames[lvl],
		Service:   l.serviceName,
		Message:   message,
		Fields:    fields,
	}

	// Extract request ID from context if available
	if ctx != nil {
		if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
			entry.RequestID = requestID
		}
	}

	if err != nil {
		entry.Error = err.Error()
	}

	jsonData, marshalErr := json.Marshal(entry)
	if marshalErr != nil {
		// Fallback to standard log if JSON marshaling fails
		log.Printf("JSON marshal error: %v, original message: %s", marshalErr, message)
		return
	}

	// One JSON object per line on stdout, for the log collector
	os.Stdout.Write(jsonData)
	os.Stdout.WriteString("\n")
}

// Package-level convenience functions using the default logger
func Info(ctx context.Context, message string, fields ...Fields) {
	emit(levelInfo, ctx, message, nil, fields)
}

func Error(ctx context.Context, message string, err error, fields ...Fields) {
	emit(levelError, ctx, message, err, fields)
}

func Warn(ctx context.Context, message string, fields ...Fields) {
	emit(levelWarn, ctx, message, nil, fields)
}

func Debug(ctx context.Context, message string, fields ...Fields) {
	emit(levelDebug, ctx, message, nil, fields)
}

func emit(lvl level, ctx context.Context, message string, err error, fields []Fields) {
	if defaultLogger == nil {
		log.Printf("Logger not initialized, falling back to standard log: %s", message)
		return
	}
	var f Fields
	if len(fields) > 0 {
		f = fields[0]
	}
	defaultLogger.log(lvl, ctx, message, err, f)
}

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}
