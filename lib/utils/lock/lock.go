package lock

import (
	"context"
	"sync"
	"time"
)

var (
	lockMap sync.Map
)

// WithDelay выполняет safeCode под блокировкой key. Если блокировку не удалось
// получить за wait или контекст завершен, возвращает success=false без вызова safeCode.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	isTimeout := time.After(wait)
	for {
		held := make(chan struct{})
		actual, loaded := lockMap.LoadOrStore(key, held)
		if !loaded {
			defer func() {
				lockMap.Delete(key)
				close(held)
			}()
			return true, safeCode()
		}
		select {
		case <-actual.(chan struct{}):
			// блокировка освобождена, пробуем снова
		case <-isTimeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		}
	}
}
