package filestorage

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const archivePrefix = "questions"

// Provider архив PDF с вопросами, отправленных кандидатам по почте
type Provider interface {
	ArchiveQuestions(ctx context.Context, email string, pdf []byte) (key string, err error)
	DeleteByCandidate(ctx context.Context, email string) (count int, err error)
	DeleteOlderThan(ctx context.Context, before time.Time) (count int, err error)
}

var Instance Provider

type impl struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

// NewInstance без клиента возвращает пустой архив
func NewInstance(client *minio.Client, bucket string) Provider {
	if client == nil {
		return disabled{}
	}
	return &impl{
		client: client,
		bucket: bucket,
		now:    time.Now,
	}
}

func NewHandler(client *minio.Client, bucket string) {
	Instance = NewInstance(client, bucket)
}

// CandidatePrefix каталог объектов кандидата, адрес почты в ключ не попадает
func CandidatePrefix(email string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("%s/%s/", archivePrefix, hex.EncodeToString(sum[:]))
}

func (i impl) getLogger(email string) *log.Entry {
	return log.
		WithField("bucket", i.bucket).
		WithField("prefix", CandidatePrefix(email))
}

func (i impl) ArchiveQuestions(ctx context.Context, email string, pdf []byte) (string, error) {
	key := fmt.Sprintf("%s%d.pdf", CandidatePrefix(email), i.now().UnixNano())
	_, err := i.client.PutObject(ctx, i.bucket, key, bytes.NewReader(pdf), int64(len(pdf)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	if err != nil {
		i.getLogger(email).WithError(err).Error("ошибка сохранения pdf в архив")
		return "", errors.Wrap(err, "archive upload failed")
	}
	return key, nil
}

func (i impl) DeleteByCandidate(ctx context.Context, email string) (int, error) {
	return i.remove(ctx, CandidatePrefix(email), func(minio.ObjectInfo) bool { return true })
}

func (i impl) DeleteOlderThan(ctx context.Context, before time.Time) (int, error) {
	return i.remove(ctx, archivePrefix+"/", func(obj minio.ObjectInfo) bool {
		return obj.LastModified.Before(before)
	})
}

func (i impl) remove(ctx context.Context, prefix string, match func(minio.ObjectInfo) bool) (int, error) {
	count := 0
	objects := i.client.ListObjects(ctx, i.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true})
	for obj := range objects {
		if obj.Err != nil {
			return count, errors.Wrap(obj.Err, "archive list failed")
		}
		if !match(obj) {
			continue
		}
		err := i.client.RemoveObject(ctx, i.bucket, obj.Key, minio.RemoveObjectOptions{})
		if err != nil {
			return count, errors.Wrapf(err, "archive remove failed: %s", obj.Key)
		}
		count++
	}
	return count, nil
}

type disabled struct{}

func (disabled) ArchiveQuestions(ctx context.Context, email string, pdf []byte) (string, error) {
	return "", nil
}

func (disabled) DeleteByCandidate(ctx context.Context, email string) (int, error) {
	return 0, nil
}

func (disabled) DeleteOlderThan(ctx context.Context, before time.Time) (int, error) {
	return 0, nil
}
