package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	File      string `json:"file,omitempty"`
	Line      int    `json:"line,omitempty"`
}

type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	jsonSink io.WriteCloser
}

// New writes colored lines to out. When logFile is non-empty every entry is
// also appended there as JSON.
func New(out io.Writer, logFile string) (*Logger, error) {
	l := &Logger{out: out}
	if logFile == "" {
		return l, nil
	}

	if dir := filepath.Dir(logFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	l.jsonSink = f
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{out: io.Discard}
}

func (l *Logger) log(level LogLevel, category, message string) {
	_, file, line, ok := runtime.Caller(2)
	if ok {
		file = filepath.Base(file)
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Level:     levelToString(level),
		Category:  strings.ToUpper(category),
		Message:   message,
		File:      file,
		Line:      line,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprint(l.out, formatTerminal(entry))
	if l.jsonSink != nil {
		if err := l.writeJSON(entry); err != nil {
			fmt.Fprintf(l.out, "logger: json sink: %v\n", err)
		}
	}
}

func (l *Logger) writeJSON(entry LogEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}
	if _, err := l.jsonSink.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write log entry: %w", err)
	}
	return nil
}

func formatTerminal(entry LogEntry) string {
	var levelColor *color.Color
	switch entry.Level {
	case "DEBUG":
		levelColor = color.New(color.FgCyan)
	case "WARN":
		levelColor = color.New(color.FgYellow)
	case "ERROR":
		levelColor = color.New(color.FgRed, color.Bold)
	default:
		levelColor = color.New(color.FgGreen)
	}

	timeStr := color.New(color.FgBlue).Sprint(entry.Timestamp[11:19])
	levelStr := levelColor.Sprintf("%-5s", entry.Level)
	categoryStr := levelColor.Sprintf("[%-8s]", entry.Category)

	if entry.File != "" && entry.Line > 0 {
		fileInfo := color.New(color.FgMagenta).Sprintf(" (%s:%d)", entry.File, entry.Line)
		return fmt.Sprintf("%s %s %s %s%s\n", timeStr, levelStr, categoryStr, entry.Message, fileInfo)
	}
	return fmt.Sprintf("%s %s %s %s\n", timeStr, levelStr, categoryStr, entry.Message)
}

func levelToString(level LogLevel) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) Debug(category, message string) { l.log(DEBUG, category, message) }
func (l *Logger) Info(category, message string)  { l.log(INFO, category, message) }
func (l *Logger) Warn(category, message string)  { l.log(WARN, category, message) }
func (l *Logger) Error(category, message string) { l.log(ERROR, category, message) }

// LogInvoice records a lifecycle step for one invoice.
func (l *Logger) LogInvoice(action, invoiceID, message string) {
	l.log(INFO, "INVOICE", fmt.Sprintf("[%s] %s - %s", action, invoiceID, message))
}

// LogRejection records a reported (non-fatal) request failure.
func (l *Logger) LogRejection(operation, reason string) {
	l.log(WARN, "REJECT", fmt.Sprintf("[%s] %s", operation, reason))
}

func (l *Logger) Close() error {
	if l.jsonSink != nil {
		return l.jsonSink.Close()
	}
	return nil
}
