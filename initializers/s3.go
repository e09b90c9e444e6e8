package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"talent-scout-backend/config"
	filestorage "talent-scout-backend/lib/file-storage"
	s3client "talent-scout-backend/s3"
)

// InitS3 без доступного хранилища сервис работает, архив писем отключается
func InitS3(ctx context.Context) {
	if err := s3client.Connect(ctx); err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3, архив писем отключен")
	} else if s3client.Client != nil {
		log.Info("S3 клиент успешно инициализирован")
	}
	filestorage.NewHandler(s3client.Client, config.Conf.S3.BucketName)
}
