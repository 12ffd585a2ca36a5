package lock

import (
	"context"
	"sync"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

// KeyLocker serializes read-modify-write sequences scoped to one key, such as
// a reaction toggle for a (user, video) pair.
type KeyLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// RedsyncLocker backs the keyed lock with a Redis distributed mutex, so the
// discipline holds even when several instances share the database.
type RedsyncLocker struct {
	rs     *redsync.Redsync
	expiry time.Duration
}

func NewRedsyncLocker(client *goredislib.Client) *RedsyncLocker {
	pool := goredis.NewPool(client)
	return &RedsyncLocker{
		rs:     redsync.New(pool),
		expiry: 8 * time.Second,
	}
}

func (l *RedsyncLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex("lock:"+key, redsync.WithExpiry(l.expiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		// Unlock failure means the mutex already expired; the next holder
		// proceeds either way.
		mutex.UnlockContext(ctx) //nolint:errcheck
	}, nil
}

// LocalLocker is the single-instance variant: one mutex per live key.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyLock)}
}

func (l *LocalLocker) Lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	kl.mu.Lock()
	return func() {
		kl.mu.Unlock()
		l.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}, nil
}
