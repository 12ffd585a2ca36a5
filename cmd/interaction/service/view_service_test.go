package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todaytheofficial/neotube/cmd/model"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/session"
)

func seedVideo(t *testing.T, videoId, userId int64) {
	t.Helper()
	require.NoError(t, db.DB.Create(&model.Video{
		VideoId: videoId,
		UserId:  userId,
		Title:   "test video",
	}).Error)
}

func testIdentity(store session.Store, sid string) *session.Identity {
	identity := &session.Identity{UserId: 2, UserName: "viewer", Avatar: "default.png"}
	store.Set(context.Background(), sid, identity, time.Hour) //nolint:errcheck
	return identity
}

func visitCount(t *testing.T, videoId int64) int64 {
	t.Helper()
	video, err := db.GetVideo(context.Background(), videoId)
	require.NoError(t, err)
	require.NotNil(t, video)
	return video.VisitCount
}

func TestRegisterViewCountsOncePerSession(t *testing.T) {
	setupTestDB(t)
	seedVideo(t, 100, 1)

	store := session.NewMemoryStore()
	identity := testIdentity(store, "sid-1")
	svc := NewViewService(context.Background(), store)
	ctx := context.Background()

	counted, err := svc.RegisterView(ctx, "sid-1", identity, 100)
	require.NoError(t, err)
	assert.True(t, counted)
	assert.Equal(t, int64(1), visitCount(t, 100))

	// A reload in the same session is not a new view.
	counted, err = svc.RegisterView(ctx, "sid-1", identity, 100)
	require.NoError(t, err)
	assert.False(t, counted)
	assert.Equal(t, int64(1), visitCount(t, 100))
}

func TestRegisterViewIgnoresAnonymous(t *testing.T) {
	setupTestDB(t)
	seedVideo(t, 100, 1)

	store := session.NewMemoryStore()
	svc := NewViewService(context.Background(), store)

	counted, err := svc.RegisterView(context.Background(), "", nil, 100)
	require.NoError(t, err)
	assert.False(t, counted)
	assert.Equal(t, int64(0), visitCount(t, 100))
}

func TestRegisterViewDistinctSessionsEachCount(t *testing.T) {
	setupTestDB(t)
	seedVideo(t, 100, 1)

	store := session.NewMemoryStore()
	ctx := context.Background()
	svc := NewViewService(ctx, store)

	idA := testIdentity(store, "sid-a")
	idB := testIdentity(store, "sid-b")

	counted, err := svc.RegisterView(ctx, "sid-a", idA, 100)
	require.NoError(t, err)
	assert.True(t, counted)
	counted, err = svc.RegisterView(ctx, "sid-b", idB, 100)
	require.NoError(t, err)
	assert.True(t, counted)

	assert.Equal(t, int64(2), visitCount(t, 100))
}

// Concurrent requests from one session racing on the same video must not
// double-increment: the view-memory claim is atomic.
func TestRegisterViewConcurrentSameSession(t *testing.T) {
	setupTestDB(t)
	seedVideo(t, 100, 1)

	store := session.NewMemoryStore()
	ctx := context.Background()
	identity := testIdentity(store, "sid-1")
	svc := NewViewService(ctx, store)

	var wg sync.WaitGroup
	countedTotal := int64(0)
	var mu sync.Mutex
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counted, err := svc.RegisterView(ctx, "sid-1", identity, 100)
			assert.NoError(t, err)
			if counted {
				mu.Lock()
				countedTotal++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), countedTotal)
	assert.Equal(t, int64(1), visitCount(t, 100))
}

func TestHasViewed(t *testing.T) {
	setupTestDB(t)
	seedVideo(t, 100, 1)

	store := session.NewMemoryStore()
	ctx := context.Background()
	identity := testIdentity(store, "sid-1")
	svc := NewViewService(ctx, store)

	viewed, err := svc.HasViewed(ctx, "sid-1", 100)
	require.NoError(t, err)
	assert.False(t, viewed)

	_, err = svc.RegisterView(ctx, "sid-1", identity, 100)
	require.NoError(t, err)

	viewed, err = svc.HasViewed(ctx, "sid-1", 100)
	require.NoError(t, err)
	assert.True(t, viewed)
}
