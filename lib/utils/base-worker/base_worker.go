package baseworker

import (
	"context"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"
)

type BaseImpl struct {
	WorkerName    string
	firstRunDelay time.Duration
	runInterval   time.Duration
}

func NewInstance(WorkerName string, firstRunDelay, runInterval time.Duration) *BaseImpl {
	return &BaseImpl{
		WorkerName:    WorkerName,
		firstRunDelay: firstRunDelay,
		runInterval:   runInterval,
	}
}

func (i BaseImpl) GetLogger() *log.Entry {
	logger := log.
		WithField("worker_name", i.WorkerName)
	return logger
}

// Run выполняет jobFunc с интервалом до завершения контекста.
// Паника в задаче логируется и не останавливает следующие запуски.
func (i BaseImpl) Run(ctx context.Context, jobFunc func(ctx context.Context)) {
	logger := i.GetLogger()
	timer := time.NewTimer(i.firstRunDelay)
	defer timer.Stop()
	for {
		select {
		// проверяем не завершён ли ещё контекст и выходим, если завершён
		case <-ctx.Done():
			logger.Info("Задача остановлена")
			return
		case <-timer.C:
			logger.Debug("Задача запущена")
			i.runJob(ctx, jobFunc)
			logger.Debug("Задача выполнена")
		}
		timer.Reset(i.runInterval)
	}
}

func (i BaseImpl) runJob(ctx context.Context, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			i.GetLogger().
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	jobFunc(ctx)
}
