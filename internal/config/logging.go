package config

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pedroganco/sanum/internal/domain"
)

// NewLogger builds the application logger. Unknown levels fall back to info.
func NewLogger(cfg domain.LoggingConfig, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339,
			FullTimestamp:   true,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}
	return logger
}

// ApplyLogging updates an existing logger in place after a config reload.
func ApplyLogging(logger *logrus.Logger, cfg domain.LoggingConfig) {
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
}
