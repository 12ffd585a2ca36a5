package service

import (
	"context"
	"time"

	"github.com/todaytheofficial/neotube/cmd/model"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/constants"
	"github.com/todaytheofficial/neotube/pkg/errno"
	"github.com/todaytheofficial/neotube/pkg/utils"

	"github.com/pkg/errors"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

// CreateUser registers a new account. A taken username is rejected before
// anything is written.
func (v *CreateUserService) CreateUser(username, password, avatarUrl string) (*model.User, error) {
	taken, err := db.UserNameExists(v.ctx, username)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.UserNameExists failed")
	}
	if taken {
		return nil, errno.UserAlreadyExistErr
	}

	hashed, err := utils.Crypt(password)
	if err != nil {
		return nil, errors.WithMessage(err, "password failed to crypt")
	}

	user := &model.User{
		UserName:  username,
		Password:  hashed,
		AvatarUrl: avatarUrl,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateUser(v.ctx, user); err != nil {
		// The unique index is the backstop against a concurrent registration
		// slipping past the existence check.
		return nil, errno.UserAlreadyExistErr
	}
	return user, nil
}
