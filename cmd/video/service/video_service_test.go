package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todaytheofficial/neotube/cmd/model"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/constants"
	"github.com/todaytheofficial/neotube/pkg/errno"
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

func seedUser(t *testing.T) *model.User {
	t.Helper()
	user := &model.User{UserName: "alice", Password: "x", AvatarUrl: "a.png"}
	require.NoError(t, db.CreateUser(context.Background(), user))
	return user
}

func TestWatchPageCarriesCommentCount(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := seedUser(t)

	video := &model.Video{UserId: user.UserId, Title: "clip"}
	require.NoError(t, db.InsertVideo(ctx, video))
	for _, text := range []string{"first", "second", "third"} {
		require.NoError(t, db.CreateComment(ctx, &model.Comment{
			UserId: user.UserId, VideoId: video.VideoId, Content: text,
		}))
	}

	page, err := NewWatchPageService(ctx).WatchPage(video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.CommentCount)
	require.Len(t, page.Comments, 3)
	assert.Equal(t, "third", page.Comments[0].Content)
	assert.Equal(t, "alice", page.Video.UserName)
	assert.False(t, page.ViewCounted)
}

func TestWatchPageMissingVideo(t *testing.T) {
	setupTestDB(t)

	_, err := NewWatchPageService(context.Background()).WatchPage(42)
	assert.ErrorIs(t, err, errno.VideoNotExistErr)
}

func TestFeedListClampsPageSize(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := seedUser(t)

	for i := 0; i < constants.DefaultLimit+2; i++ {
		require.NoError(t, db.InsertVideo(ctx, &model.Video{
			UserId: user.UserId, Title: fmt.Sprintf("clip-%d", i),
		}))
	}

	// A missing or zero limit falls back to the default page size.
	feed, err := NewFeedListService(ctx).FeedList(0, 0)
	require.NoError(t, err)
	assert.Len(t, feed, constants.DefaultLimit)

	// An oversized limit is capped, not rejected.
	feed, err = NewFeedListService(ctx).FeedList(constants.MaxLimit+1, 0)
	require.NoError(t, err)
	assert.Len(t, feed, constants.DefaultLimit+2)

	feed, err = NewFeedListService(ctx).FeedList(5, constants.DefaultLimit)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}
