package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with helpers for the concerns this service logs
// most: HTTP traffic, reservation lifecycle changes and authentication.
type Logger struct {
	*slog.Logger
}

// New creates a logger. Text output in debug mode, JSON in release.
func New() *Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID returns a logger carrying the request id on every record.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("request_id", requestID))}
}

// WithError returns a logger carrying the error on every record.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("error", err.Error()))}
}

// LogHTTPRequest logs a completed HTTP request.
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
	)
}

// LogReservationCreated logs a newly created reservation hold.
func (l *Logger) LogReservationCreated(ctx context.Context, reservationID, spotID, customerID string) {
	l.Logger.InfoContext(ctx,
		"Reservation Created",
		slog.String("reservation_id", reservationID),
		slog.String("spot_id", spotID),
		slog.String("customer_id", customerID),
	)
}

// LogReservationStatusChanged logs a lifecycle transition.
func (l *Logger) LogReservationStatusChanged(ctx context.Context, reservationID, from, to string) {
	l.Logger.InfoContext(ctx,
		"Reservation Status Changed",
		slog.String("reservation_id", reservationID),
		slog.String("from", from),
		slog.String("to", to),
	)
}

// LogAuthSuccess logs a successful admin login.
func (l *Logger) LogAuthSuccess(ctx context.Context, userID string) {
	l.Logger.InfoContext(ctx,
		"Authentication Success",
		slog.String("user_id", userID),
	)
}

// LogAuthFailure logs a failed login attempt.
func (l *Logger) LogAuthFailure(ctx context.Context, reason, ip string) {
	l.Logger.WarnContext(ctx,
		"Authentication Failure",
		slog.String("reason", reason),
		slog.String("ip", ip),
	)
}

var defaultLogger = New()

// GetDefault returns the process-wide logger instance.
func GetDefault() *Logger {
	return defaultLogger
}
