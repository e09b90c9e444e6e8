package sessionexpireworker

import (
	"context"
	"time"

	"talent-scout-backend/config"
	sessionhandler "talent-scout-backend/lib/session"
	baseworker "talent-scout-backend/lib/utils/base-worker"
)

func StartWorker(ctx context.Context) {
	i := &impl{
		BaseImpl: *baseworker.NewInstance("SessionExpireWorker", time.Minute, time.Minute),
		sessions: sessionhandler.Instance,
		ttl:      config.Conf.SessionTTL(),
	}
	go i.Run(ctx, i.handle)
}

type impl struct {
	baseworker.BaseImpl
	sessions sessionhandler.Provider
	ttl      time.Duration
}

func (i impl) handle(ctx context.Context) {
	count := i.sessions.ExpireIdle(time.Now().Add(-i.ttl))
	if count > 0 {
		i.GetLogger().WithField("count", count).Info("неактивные сессии удалены")
	}
}
