package service

import (
	"context"

	"github.com/todaytheofficial/neotube/cmd/model"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/errno"

	"github.com/pkg/errors"
)

type GetChannelService struct {
	ctx context.Context
}

func NewGetChannelService(ctx context.Context) *GetChannelService {
	return &GetChannelService{ctx: ctx}
}

type ChannelPage struct {
	User   *model.User    `json:"user"`
	Videos []*model.Video `json:"videos"`
}

// GetChannel returns a creator's page: the account plus their uploads, newest
// first. Both the id and the username must match the same account.
func (v *GetChannelService) GetChannel(userId int64, username string) (*ChannelPage, error) {
	user, err := db.QueryUserById(v.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.QueryUserById failed")
	}
	if user == nil || user.UserName != username {
		return nil, errno.ChannelNotExistErr
	}

	videos, err := db.VideoListByUser(v.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.VideoListByUser failed")
	}
	return &ChannelPage{
		User:   user,
		Videos: videos,
	}, nil
}
