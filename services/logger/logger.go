package logger

import "log"

// Logger là sink log nhỏ cho tầng service, handler truyền implementation
// riêng khi cần, test truyền Nop để output gọn.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Level chặn bớt log dưới ngưỡng
type Level int

const (
	InfoLevel Level = iota
	ErrorLevel
)

type DefaultLogger struct {
	level Level
}

func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{level: level}
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf("[INFO] "+format, v...)
	}
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	log.Printf("[ERROR] "+format, v...)
}

// Nop bỏ qua mọi log
type Nop struct{}

func (Nop) Info(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
