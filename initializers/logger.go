package initializers

import (
	log "github.com/sirupsen/logrus"
	"talent-scout-backend/fiberlog"
)

func InitLogger() *fiberlog.Config {
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	log.SetLevel(log.InfoLevel)

	logger := log.New()
	logger.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})
	logger.SetLevel(log.DebugLevel)
	// тела запросов не пишем: в них персональные данные кандидатов
	return &fiberlog.Config{
		Logger: logger,
		Tags: []string{
			fiberlog.TagMethod,
			fiberlog.TagPath,
			fiberlog.TagStatus,
			fiberlog.TagLatency,
			fiberlog.TagRequestID,
		},
	}
}
