package retentionworker

import (
	"context"
	"time"

	"talent-scout-backend/config"
	"talent-scout-backend/db"
	candidatestore "talent-scout-backend/lib/candidate/store"
	filestorage "talent-scout-backend/lib/file-storage"
	baseworker "talent-scout-backend/lib/utils/base-worker"
	"talent-scout-backend/lib/utils/helpers"
)

func StartWorker(ctx context.Context) {
	i := NewInstance(candidatestore.NewInstance(db.DB), filestorage.Instance, config.Conf.Retention())
	go i.Run(ctx, i.handle)
}

func NewInstance(candidates candidatestore.Provider, archive filestorage.Provider, retention time.Duration) *impl {
	return &impl{
		BaseImpl:   *baseworker.NewInstance("CandidateRetentionWorker", 30*time.Second, 6*time.Hour),
		candidates: candidates,
		archive:    archive,
		retention:  retention,
		now:        time.Now,
	}
}

type impl struct {
	baseworker.BaseImpl
	candidates candidatestore.Provider
	archive    filestorage.Provider
	retention  time.Duration
	now        func() time.Time
}

// handle удаляет анкеты и архив писем старше срока хранения
func (i impl) handle(ctx context.Context) {
	logger := i.GetLogger()
	before := i.now().Add(-i.retention)
	deleted, err := i.candidates.DeleteOlderThan(before)
	if err != nil {
		logger.WithError(err).Error("ошибка удаления устаревших анкет кандидатов")
	} else if deleted > 0 {
		logger.WithField("count", deleted).Info("устаревшие анкеты кандидатов удалены")
	}
	if helpers.IsContextDone(ctx) || i.archive == nil {
		return
	}
	archived, err := i.archive.DeleteOlderThan(ctx, before)
	if err != nil {
		logger.WithError(err).Error("ошибка очистки архива писем")
		return
	}
	if archived > 0 {
		logger.WithField("count", archived).Info("устаревшие письма удалены из архива")
	}
}
