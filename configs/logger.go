package configs

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

func InitLogger() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

// LogWithContext returns an entry tagged with the service and operation names.
func LogWithContext(service, operation string) *logrus.Entry {
	if Logger == nil {
		InitLogger()
	}
	return Logger.WithFields(logrus.Fields{
		"service":   service,
		"operation": operation,
	})
}
