package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates the process-wide logrus logger. Development gets human-readable
// text output; everything else logs JSON.
func New(appName, env string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if env == "development" {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return log
}
