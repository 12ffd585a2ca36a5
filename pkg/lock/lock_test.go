package lock

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLockerSerializesPerKey(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(ctx, "reaction:1:100")
			assert.NoError(t, err)
			// Unsynchronized read-modify-write; only the lock keeps it sane.
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 32, counter)
}

func TestLocalLockerIndependentKeys(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	unlockA, err := locker.Lock(ctx, "reaction:1:100")
	require.NoError(t, err)

	// A different key must not be blocked by the held lock.
	done := make(chan struct{})
	go func() {
		unlockB, err := locker.Lock(ctx, "reaction:2:100")
		assert.NoError(t, err)
		unlockB()
		close(done)
	}()
	<-done

	unlockA()
}

func TestLocalLockerReleasesKeyState(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "k")
	require.NoError(t, err)
	unlock()

	locker.mu.Lock()
	n := len(locker.locks)
	locker.mu.Unlock()
	assert.Equal(t, 0, n)
}
