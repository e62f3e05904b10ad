package logging

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// requestTimeout bounds every request so a stalled store cannot hang callers.
const requestTimeout = 30 * time.Second

func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		log.Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(w, req, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware injects a per-request LogData into the context, applies the
// request timeout, and logs a completion entry with the accumulated fields.
func Middleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx, cancel := context.WithTimeout(req.Context(), requestTimeout)
			defer cancel()

			logData := NewLogData(log)
			logData.AddData("method", req.Method)
			logData.AddData("path", req.URL.Path)

			endTimer := logData.AddTiming("duration")
			next.ServeHTTP(w, req.WithContext(WithLogData(ctx, logData)))
			endTimer()

			logData.Log().Info("Request.Complete")
		})
	}
}
