package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/lock"
	"github.com/todaytheofficial/neotube/pkg/ws"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(gdb))
	db.DB = gdb
}

func newTestReactionService(hub *ws.Hub) *ReactionService {
	return NewReactionService(context.Background(), lock.NewLocalLocker(), hub)
}

func TestReactToggleOff(t *testing.T) {
	setupTestDB(t)
	svc := newTestReactionService(nil)
	ctx := context.Background()

	likes, dislikes, err := svc.React(ctx, 1, 100, ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	assert.Equal(t, int64(0), dislikes)

	// The same reaction again un-reacts and restores the previous counts.
	likes, dislikes, err = svc.React(ctx, 1, 100, ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
	assert.Equal(t, int64(0), dislikes)

	liked, disliked, err := svc.HasReacted(ctx, 1, 100)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.False(t, disliked)
}

func TestReactFlipIsExclusive(t *testing.T) {
	setupTestDB(t)
	svc := newTestReactionService(nil)
	ctx := context.Background()

	_, _, err := svc.React(ctx, 1, 100, ReactionLike)
	require.NoError(t, err)

	likes, dislikes, err := svc.React(ctx, 1, 100, ReactionDislike)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
	assert.Equal(t, int64(1), dislikes)

	liked, disliked, err := svc.HasReacted(ctx, 1, 100)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.True(t, disliked)
}

func TestReactCountsAcrossUsers(t *testing.T) {
	setupTestDB(t)
	svc := newTestReactionService(nil)
	ctx := context.Background()

	_, _, err := svc.React(ctx, 1, 100, ReactionLike)
	require.NoError(t, err)
	_, _, err = svc.React(ctx, 2, 100, ReactionLike)
	require.NoError(t, err)
	likes, dislikes, err := svc.React(ctx, 3, 100, ReactionDislike)
	require.NoError(t, err)

	assert.Equal(t, int64(2), likes)
	assert.Equal(t, int64(1), dislikes)
}

func TestReactUnknownVideoCountsZero(t *testing.T) {
	setupTestDB(t)
	svc := newTestReactionService(nil)

	likes, dislikes, err := svc.Counts(context.Background(), 9999)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
	assert.Equal(t, int64(0), dislikes)
}

func TestReactInvalidKind(t *testing.T) {
	setupTestDB(t)
	svc := newTestReactionService(nil)

	_, _, err := svc.React(context.Background(), 1, 100, ReactionKind("love"))
	assert.Error(t, err)
}

// Duplicate in-flight requests for the same (user, video) must serialize: an
// even number of identical toggles always lands back on "no reaction".
func TestReactConcurrentTogglesSerialize(t *testing.T) {
	setupTestDB(t)
	svc := newTestReactionService(nil)
	ctx := context.Background()

	const rounds = 8
	var wg sync.WaitGroup
	for i := 0; i < rounds; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := svc.React(ctx, 1, 100, ReactionLike)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	likes, dislikes, err := svc.Counts(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
	assert.Equal(t, int64(0), dislikes)

	liked, disliked, err := svc.HasReacted(ctx, 1, 100)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.False(t, disliked)
}

// A store error mid-toggle must roll the whole toggle back: a failed request
// cannot leave the caller's previous reaction half-removed.
func TestReactFailedToggleKeepsPriorReaction(t *testing.T) {
	setupTestDB(t)
	svc := newTestReactionService(nil)
	ctx := context.Background()

	_, _, err := svc.React(ctx, 1, 100, ReactionDislike)
	require.NoError(t, err)

	require.NoError(t, db.DB.Callback().Create().Before("gorm:create").
		Register("likes_insert_outage", func(tx *gorm.DB) {
			if tx.Statement.Table == "likes" {
				tx.AddError(errors.New("storage offline"))
			}
		}))
	defer db.DB.Callback().Create().Remove("likes_insert_outage")

	_, _, err = svc.React(ctx, 1, 100, ReactionLike)
	require.Error(t, err)

	liked, disliked, err := svc.HasReacted(ctx, 1, 100)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.True(t, disliked)

	likes, dislikes, err := svc.Counts(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes)
	assert.Equal(t, int64(1), dislikes)
}

func TestReactBroadcastsFreshCounts(t *testing.T) {
	setupTestDB(t)
	hub := ws.NewHub()
	client := hub.Register()
	defer hub.Unregister(client)

	svc := newTestReactionService(hub)
	ctx := context.Background()

	_, _, err := svc.React(ctx, 1, 100, ReactionLike)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"reaction-update","data":{"video_id":100,"like_count":1,"dislike_count":0}}`,
		string(<-client.C))

	// Flipping removes the like and adds the dislike in one logical step.
	_, _, err = svc.React(ctx, 1, 100, ReactionDislike)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"reaction-update","data":{"video_id":100,"like_count":0,"dislike_count":1}}`,
		string(<-client.C))
}
