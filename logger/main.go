package logger

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/trustline/identity-verification-go/config"
)

// Log is an instance of the global logrus.Logger
var Log *logrus.Logger

// InitLogger initializes the identity verification client logger
func InitLogger() *logrus.Logger {
	if Log == nil {
		logLevel, err := logrus.ParseLevel(config.GetConfig().Options.GetString(config.Keys.LogLevel))
		if err != nil {
			logLevel = logrus.InfoLevel
		}

		Log = &logrus.Logger{
			Out:          os.Stdout,
			Level:        logLevel,
			ReportCaller: true,
		}

		formatter := &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "ts",
				logrus.FieldKeyFunc:  "caller",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "msg",
			},
		}

		Log.SetFormatter(formatter)
	}

	return Log
}
