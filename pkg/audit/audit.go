package audit

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Event names for security-relevant occurrences
const (
	EventLoginSuccess       = "login_success"
	EventLoginFailed        = "login_failed"
	EventRegistered         = "user_registered"
	EventForbidden          = "access_forbidden"
	EventTokenInvalid       = "token_invalid"
	EventRateLimitTriggered = "rate_limit_triggered"
	EventPasswordReset      = "password_reset"
)

// Logger provides structured logging for security events
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	defaultLogger *Logger
	initOnce      sync.Once
)

// Init initializes the process-wide audit logger
func Init(serviceName, environment string) *Logger {
	initOnce.Do(func() {
		config := zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

		zapLogger, err := config.Build(zap.AddCallerSkip(1))
		if err != nil {
			zapLogger = zap.NewNop()
		}

		defaultLogger = &Logger{
			zapLogger:   zapLogger,
			serviceName: serviceName,
			environment: environment,
		}
	})
	return defaultLogger
}

// Default returns the process-wide audit logger, or nil before Init
func Default() *Logger {
	return defaultLogger
}

// Event records a security event with structured context fields
func (l *Logger) Event(event, ip, requestID string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("event", event),
		zap.String("service", l.serviceName),
		zap.String("environment", l.environment),
		zap.String("ip", ip),
		zap.String("request_id", requestID),
	}
	l.zapLogger.Info("security_event", append(base, fields...)...)
}

// Sync flushes buffered entries; call on shutdown
func (l *Logger) Sync() {
	_ = l.zapLogger.Sync()
}
