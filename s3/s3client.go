package s3client

import (
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
	"talent-scout-backend/config"
)

var Client *minio.Client

// Connect создает клиента minio и бакет, пустой S3_ENDPOINT отключает хранилище
func Connect(ctx context.Context) error {
	if config.Conf.S3.Endpoint == "" {
		log.Info("S3 не настроен, архив писем отключен")
		return nil
	}
	client, err := NewClient(config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, *config.Conf.S3.UseSSL)
	if err != nil {
		return err
	}
	if err = MakeBucket(ctx, client, config.Conf.S3.BucketName); err != nil {
		return err
	}
	Client = client
	return nil
}

func NewClient(endpoint, accessKeyID, secretAccessKey string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
}

func MakeBucket(ctx context.Context, client *minio.Client, bucketName string) error {
	location := "us-east-1"
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}
