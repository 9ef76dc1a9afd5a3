package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/ssugameworks/pajelingo/constants"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type Logger struct {
	mu     sync.RWMutex
	level  LogLevel
	logger *log.Logger
}

var globalLogger *Logger

// JWT 형태의 토큰 (header.payload.signature)
var jwtPattern = regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`)

func init() {
	globalLogger = NewLogger()
}

func NewLogger() *Logger {
	return &Logger{
		level:  ParseLogLevel(os.Getenv(constants.EnvLogLevel)),
		logger: log.New(os.Stdout, "", 0),
	}
}

// ParseLogLevel 문자열을 로그 레벨로 변환합니다. 알 수 없는 값은 INFO 입니다.
func ParseLogLevel(levelStr string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case constants.LogLevelDebug:
		return DEBUG
	case constants.LogLevelInfo:
		return INFO
	case constants.LogLevelWarn:
		return WARN
	case constants.LogLevelError:
		return ERROR
	default:
		return INFO
	}
}

// SetLevel 로그 레벨을 변경합니다
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput 로그 출력 대상을 변경합니다
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if level < l.level {
		return
	}

	levelStr := l.getLevelString(level)
	timestamp := time.Now().Format(constants.DateTimeFormat)
	message := fmt.Sprintf(format, args...)

	// 보안: 민감한 정보가 로그에 기록되지 않도록 필터링
	filteredMessage := l.filterSensitiveInfo(message)

	l.logger.Printf("[%s] %s %s", timestamp, levelStr, filteredMessage)
}

// filterSensitiveInfo 민감한 정보를 로그에서 마스킹합니다
func (l *Logger) filterSensitiveInfo(message string) string {
	message = jwtPattern.ReplaceAllString(message, "***TOKEN***")

	sensitiveKeywords := []string{"token", "secret", "password"}
	lowerMessage := strings.ToLower(message)

	for _, keyword := range sensitiveKeywords {
		idx := strings.Index(lowerMessage, keyword)
		if idx == -1 {
			continue
		}
		before := message[:idx+len(keyword)]
		remaining := message[idx+len(keyword):]

		// = 또는 : 다음의 값을 찾아 마스킹
		for _, sep := range []string{"=", ":", "\""} {
			if strings.HasPrefix(remaining, sep) {
				message = before + sep + "***MASKED***"
				lowerMessage = strings.ToLower(message)
				break
			}
		}
	}

	return message
}

func (l *Logger) getLevelString(level LogLevel) string {
	switch level {
	case DEBUG:
		return constants.LogLevelDebug
	case INFO:
		return constants.LogLevelInfo
	case WARN:
		return constants.LogLevelWarn
	case ERROR:
		return constants.LogLevelError
	default:
		return "UNKNOWN"
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

// 글로벌 로거 함수들

// SetLevel 글로벌 로거의 레벨을 설정합니다
func SetLevel(levelStr string) {
	globalLogger.SetLevel(ParseLogLevel(levelStr))
}

// SetOutput 글로벌 로거의 출력 대상을 설정합니다
func SetOutput(w io.Writer) {
	globalLogger.SetOutput(w)
}

func Debug(format string, args ...interface{}) {
	globalLogger.Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	globalLogger.Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.Warn(format, args...)
}

func Error(format string, args ...interface{}) {
	globalLogger.Error(format, args...)
}
