package services

import (
	"TrailGuide/internal/config"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogService struct {
	Log *logrus.Logger
}

func NewLogService(configuration *config.Configuration) LogService {
	log := logrus.New()
	setLogOutputType(configuration, log)
	setLogLevel(configuration, log)
	setLogFormatter(configuration, log)
	return LogService{
		Log: log,
	}
}

func setLogFormatter(configuration *config.Configuration, log *logrus.Logger) {
	switch configuration.Server.LogConfig.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func setLogLevel(configuration *config.Configuration, log *logrus.Logger) {
	level, err := logrus.ParseLevel(strings.ToLower(configuration.Server.LogConfig.Level))
	if err != nil {
		log.Warnf("unknown log level %q, using info", configuration.Server.LogConfig.Level)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
}

func setLogOutputType(configuration *config.Configuration, log *logrus.Logger) {
	logConfig := configuration.Server.LogConfig
	switch logConfig.Output {
	case "stdout":
		log.SetOutput(os.Stdout)
	case "file", "both":
		if err := os.MkdirAll(filepath.Dir(logConfig.File), os.ModePerm); err != nil {
			log.Errorf("could not create log folder, logging to stdout: %v", err)
			log.SetOutput(os.Stdout)
			return
		}
		rotating := &lumberjack.Logger{
			Filename:   logConfig.File,
			MaxSize:    logConfig.MaxSize,
			MaxBackups: logConfig.MaxBackups,
			MaxAge:     logConfig.MaxAge,
			Compress:   logConfig.Compress,
		}
		if logConfig.Output == "both" {
			log.SetOutput(io.MultiWriter(os.Stdout, rotating))
		} else {
			log.SetOutput(rotating)
		}
	}
}
