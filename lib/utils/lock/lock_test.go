package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`serialized check`, func(t *testing.T) {
		var inside, maxInside, failed int32
		var wg sync.WaitGroup
		for n := 0; n < 10; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := WithDelay(context.TODO(), "serialized", 5*time.Second, func() error {
					cur := atomic.AddInt32(&inside, 1)
					if cur > atomic.LoadInt32(&maxInside) {
						atomic.StoreInt32(&maxInside, cur)
					}
					time.Sleep(5 * time.Millisecond)
					atomic.AddInt32(&inside, -1)
					return nil
				})
				if !ok || err != nil {
					atomic.AddInt32(&failed, 1)
				}
			}()
		}
		wg.Wait()
		require.Equal(t, int32(0), failed)
		require.Equal(t, int32(1), maxInside)
	})

	t.Run(`timeout check`, func(t *testing.T) {
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.TODO(), "timeout", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		called := false
		ok, err := WithDelay(context.TODO(), "timeout", 20*time.Millisecond, func() error {
			called = true
			return nil
		})
		close(release)
		require.False(t, ok)
		require.Nil(t, err)
		require.False(t, called)
	})

	t.Run(`error passthrough check`, func(t *testing.T) {
		ok, err := WithDelay(context.TODO(), "error", time.Second, func() error {
			return errors.New("boom")
		})
		require.True(t, ok)
		require.EqualError(t, err, "boom")

		ok, err = WithDelay(context.TODO(), "error", time.Second, func() error { return nil })
		require.True(t, ok)
		require.Nil(t, err)
	})
}
