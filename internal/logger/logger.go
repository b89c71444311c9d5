package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

var levelNames = map[LogLevel]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
}

// Logger writes leveled, timestamped lines to a file. The terminal itself
// belongs to the renderer, so nothing is ever logged to stdout.
type Logger struct {
	logger    *log.Logger
	level     LogLevel
	file      *os.File
	debugMode bool
}

// グローバルロガーインスタンス
var globalLogger *Logger

// InitLogger グローバルロガーを初期化
func InitLogger(logPath string, level LogLevel, debugMode bool) error {
	l, err := New(logPath, level)
	if err != nil {
		return err
	}
	l.debugMode = debugMode
	globalLogger = l
	return nil
}

// CloseLogger グローバルロガーを閉じる
func CloseLogger() error {
	if globalLogger != nil {
		return globalLogger.Close()
	}
	return nil
}

// IsDebugEnabled デバッグモードが有効かどうかを確認
func IsDebugEnabled() bool {
	return globalLogger != nil && globalLogger.debugMode
}

// グローバル関数群
func Debug(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.debugMode {
		globalLogger.log(DEBUG, format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(INFO, format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(WARN, format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.log(ERROR, format, args...)
	}
}

// New creates a file-only logger, creating the log directory if needed.
func New(logPath string, level LogLevel) (*Logger, error) {
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &Logger{
		logger: log.New(file, "", 0),
		level:  level,
		file:   file,
	}, nil
}

// Close closes the log file
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")

	var caller string
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = fmt.Sprintf(" [%s:%d]", filepath.Base(file), line)
	}

	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%s [%s]%s %s", timestamp, levelNames[level], caller, message)
}
