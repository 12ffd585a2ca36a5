package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todaytheofficial/neotube/cmd/model"
	"github.com/todaytheofficial/neotube/dal/db"
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

func TestCreateUserThenLogin(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	created, err := NewCreateUserService(ctx).CreateUser("alice", "hunter2", "default.png")
	require.NoError(t, err)
	require.NotZero(t, created.UserId)
	assert.NotEqual(t, "hunter2", created.Password)

	user, err := NewLoginUserService(ctx).LoginUser("alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, created.UserId, user.UserId)
	assert.Equal(t, "default.png", user.AvatarUrl)
}

func TestCreateUserDuplicateName(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, err := NewCreateUserService(ctx).CreateUser("alice", "hunter2", "default.png")
	require.NoError(t, err)

	_, err = NewCreateUserService(ctx).CreateUser("alice", "other", "default.png")
	assert.ErrorIs(t, err, errno.UserAlreadyExistErr)
}

func TestLoginWrongPassword(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, err := NewCreateUserService(ctx).CreateUser("alice", "hunter2", "default.png")
	require.NoError(t, err)

	_, err = NewLoginUserService(ctx).LoginUser("alice", "hunter3")
	assert.ErrorIs(t, err, errno.PasswordWrongErr)
}

func TestLoginUnknownUserLooksLikeWrongPassword(t *testing.T) {
	setupTestDB(t)

	_, err := NewLoginUserService(context.Background()).LoginUser("nobody", "hunter2")
	assert.ErrorIs(t, err, errno.PasswordWrongErr)
}

func TestGetChannelListsUploadsNewestFirst(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	user, err := NewCreateUserService(ctx).CreateUser("alice", "hunter2", "default.png")
	require.NoError(t, err)
	for _, title := range []string{"first", "second"} {
		require.NoError(t, db.InsertVideo(ctx, &model.Video{UserId: user.UserId, Title: title}))
	}

	page, err := NewGetChannelService(ctx).GetChannel(user.UserId, "alice")
	require.NoError(t, err)
	require.Len(t, page.Videos, 2)
	assert.Equal(t, "second", page.Videos[0].Title)
	assert.Equal(t, "first", page.Videos[1].Title)
}

func TestGetChannelNameMustMatchId(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	user, err := NewCreateUserService(ctx).CreateUser("alice", "hunter2", "default.png")
	require.NoError(t, err)

	_, err = NewGetChannelService(ctx).GetChannel(user.UserId, "bob")
	assert.ErrorIs(t, err, errno.ChannelNotExistErr)

	_, err = NewGetChannelService(ctx).GetChannel(user.UserId+99, "alice")
	assert.ErrorIs(t, err, errno.ChannelNotExistErr)
}
