package service

import (
	"context"

	"github.com/todaytheofficial/neotube/cmd/model"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/errno"
	"github.com/todaytheofficial/neotube/pkg/utils"

	"github.com/pkg/errors"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

// LoginUser checks the credentials and returns the account. A missing user
// and a wrong password are indistinguishable to the caller.
func (v *LoginUserService) LoginUser(username, password string) (*model.User, error) {
	user, err := db.QueryUserByName(v.ctx, username)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.QueryUserByName failed")
	}
	if user == nil {
		return nil, errno.PasswordWrongErr
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, errno.PasswordWrongErr
	}
	return user, nil
}
