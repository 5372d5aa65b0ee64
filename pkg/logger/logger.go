// Package logger routes bot logging to the console, an audit file and
// the guild's staff webhooks. Messages carry a prefix naming the
// subsystem they came from.
package logger

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// Level is the display label layered on top of logrus's severities.
// Success and System log at info severity with their own label.
type Level int

const (
	LevelCritical Level = iota
	LevelError
	LevelWarn
	LevelSuccess
	LevelInfo
	LevelDebug
	LevelSystem
)

// Entry fields the formatter and hooks read back.
const (
	fieldLevel  = "warden.level"
	fieldPrefix = "warden.prefix"
)

const timeLayout = "2006-01-02 15:04:05"

var levelLabels = map[Level]string{
	LevelCritical: "CRITICAL",
	LevelError:    "ERROR",
	LevelWarn:     "WARN",
	LevelSuccess:  "SUCCESS",
	LevelInfo:     "INFO",
	LevelDebug:    "DEBUG",
	LevelSystem:   "SYSTEM",
}

var levelColors = map[Level]string{
	LevelCritical: "\033[1;31m",
	LevelError:    "\033[31m",
	LevelWarn:     "\033[33m",
	LevelSuccess:  "\033[32m",
	LevelInfo:     "\033[36m",
	LevelDebug:    "\033[35m",
	LevelSystem:   "\033[34m",
}

// Embed colors for the webhook mirror.
var levelEmbedColors = map[Level]int{
	LevelCritical: 0xFF0000,
	LevelError:    0xFF0000,
	LevelWarn:     0xFFFF00,
	LevelSuccess:  0x00FF00,
	LevelSystem:   0x808080,
}

const colorReset = "\033[0m"

// Label returns the display label for the level.
func (l Level) Label() string {
	if label, ok := levelLabels[l]; ok {
		return label
	}
	return "UNKNOWN"
}

// severity maps a display level onto the logrus severity it logs at.
func (l Level) severity() logrus.Level {
	switch l {
	case LevelCritical, LevelError:
		return logrus.ErrorLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// consoleFormatter renders "[time] [LEVEL] [Prefix]: message" with the
// level colored.
type consoleFormatter struct{}

func (consoleFormatter) Format(e *logrus.Entry) ([]byte, error) {
	lvl, _ := e.Data[fieldLevel].(Level)
	prefix, _ := e.Data[fieldPrefix].(string)
	line := fmt.Sprintf("[%s] [%s%s%s] [%s]: %s\n",
		e.Time.Format(timeLayout), levelColors[lvl], lvl.Label(), colorReset, prefix, e.Message)
	return []byte(line), nil
}

// auditFileHook appends every entry, uncolored, to the audit log.
type auditFileHook struct {
	mu   sync.Mutex
	file *os.File
}

func (h *auditFileHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *auditFileHook) Fire(e *logrus.Entry) error {
	lvl, _ := e.Data[fieldLevel].(Level)
	prefix, _ := e.Data[fieldPrefix].(string)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.file, "[%s] [%s] [%s]: %s\n",
		e.Time.Format(timeLayout), lvl.Label(), prefix, e.Message)
	return err
}

// webhookHook mirrors entries to the guild's staff webhooks: critical
// and error to the alert webhook, warn/success/system to the activity
// webhook. Info and debug chatter stays off the wire.
type webhookHook struct {
	errorURL string
	logsURL  string
	client   *http.Client
}

func (h *webhookHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *webhookHook) Fire(e *logrus.Entry) error {
	lvl, _ := e.Data[fieldLevel].(Level)
	prefix, _ := e.Data[fieldPrefix].(string)

	url := h.urlFor(lvl)
	if url == "" {
		return nil
	}

	// Fire and forget; webhook delivery never slows a log call down.
	go h.post(url, lvl, prefix, e.Message)
	return nil
}

func (h *webhookHook) urlFor(lvl Level) string {
	switch lvl {
	case LevelCritical, LevelError:
		return h.errorURL
	case LevelWarn, LevelSuccess, LevelSystem:
		return h.logsURL
	}
	return ""
}

func (h *webhookHook) post(url string, lvl Level, prefix, message string) {
	payload := map[string]interface{}{
		"embeds": []interface{}{map[string]interface{}{
			"title":       fmt.Sprintf("[%s] %s", lvl.Label(), prefix),
			"description": fmt.Sprintf("```%s```", message),
			"color":       levelEmbedColors[lvl],
			"timestamp":   time.Now().Format(time.RFC3339),
			"footer":      map[string]string{"text": "Warden moderation"},
		}},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	resp, err := h.client.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		return
	}
	resp.Body.Close()
}

// Logger fans log entries out through logrus to the configured sinks.
type Logger struct {
	rus  *logrus.Logger
	file *os.File
}

var (
	logger *Logger
	once   sync.Once
)

// Init initializes the global logger instance
func Init(errorWebhook, logsWebhook string) *Logger {
	once.Do(func() {
		logger = NewLogger(errorWebhook, logsWebhook)
	})
	return logger
}

// Get returns the global logger, creating a console-only one when Init
// was never called.
func Get() *Logger {
	once.Do(func() {
		logger = NewLogger("", "")
	})
	return logger
}

// NewLogger creates a logger writing to stdout, logs/warden.log and the
// given webhooks. Empty webhook URLs disable the webhook mirror; a
// failure to open the audit file disables the file sink, not the logger.
func NewLogger(errorWebhook, logsWebhook string) *Logger {
	rus := logrus.New()
	rus.SetLevel(logrus.DebugLevel)
	rus.SetFormatter(consoleFormatter{})
	rus.SetOutput(os.Stdout)

	l := &Logger{rus: rus}

	logsDir := filepath.Join(".", "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		fmt.Printf("Error creating logs directory: %v\n", err)
	} else {
		file, err := os.OpenFile(filepath.Join(logsDir, "warden.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Printf("Error opening audit log file: %v\n", err)
		} else {
			l.file = file
			rus.AddHook(&auditFileHook{file: file})
		}
	}

	if errorWebhook != "" || logsWebhook != "" {
		rus.AddHook(&webhookHook{
			errorURL: errorWebhook,
			logsURL:  logsWebhook,
			client:   &http.Client{Timeout: 5 * time.Second},
		})
	}

	return l
}

func (l *Logger) log(lvl Level, message, prefix string) {
	l.rus.WithFields(logrus.Fields{
		fieldLevel:  lvl,
		fieldPrefix: prefix,
	}).Log(lvl.severity(), message)
}

// Close closes the audit log file.
func (l *Logger) Close() {
	if l.file != nil {
		l.file.Close()
	}
}

// Critical logs a critical message
func (l *Logger) Critical(message string, prefix string) {
	l.log(LevelCritical, message, prefix)
}

// Error logs an error message
func (l *Logger) Error(message string, prefix string) {
	l.log(LevelError, message, prefix)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, prefix string) {
	l.log(LevelWarn, message, prefix)
}

// Success logs a success message
func (l *Logger) Success(message string, prefix string) {
	l.log(LevelSuccess, message, prefix)
}

// Info logs an info message
func (l *Logger) Info(message string, prefix string) {
	l.log(LevelInfo, message, prefix)
}

// Debug logs a debug message
func (l *Logger) Debug(message string, prefix string) {
	l.log(LevelDebug, message, prefix)
}

// System logs a system message
func (l *Logger) System(message string, prefix string) {
	l.log(LevelSystem, message, prefix)
}

// Package-level helpers over the global logger.

func Critical(message string, prefix string) { Get().Critical(message, prefix) }
func Error(message string, prefix string)    { Get().Error(message, prefix) }
func Warn(message string, prefix string)     { Get().Warn(message, prefix) }
func Success(message string, prefix string)  { Get().Success(message, prefix) }
func Info(message string, prefix string)     { Get().Info(message, prefix) }
func Debug(message string, prefix string)    { Get().Debug(message, prefix) }
func System(message string, prefix string)   { Get().System(message, prefix) }
