package logging

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// discardLogger backs LogData lookups outside the middleware so handlers can
// record timings unconditionally.
var discardLogger = func() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}()

// WithLogData returns a context carrying the given LogData.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the request's LogData. When the request did not pass
// through the logging middleware (e.g. in tests) a discarding instance is
// returned instead.
func GetLogData(ctx context.Context) *LogData {
	if logData, ok := ctx.Value(logDataKey{}).(*LogData); ok {
		return logData
	}
	return NewLogData(discardLogger)
}
