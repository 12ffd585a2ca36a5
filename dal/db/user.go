package db

import (
	"context"

	"github.com/pkg/errors"
	"github.com/todaytheofficial/neotube/cmd/model"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed, username: %s", user.UserName)
	}
	return nil
}

// UserNameExists reports whether the username is already taken, so registration
// can reject duplicates before writing anything.
func UserNameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", username).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "UserNameExists failed, username: %s", username)
	}
	return count > 0, nil
}

func QueryUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryUserByName failed, username: %s", username)
	}
	return &user, nil
}

func QueryUserById(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "QueryUserById failed, userId: %d", userId)
	}
	return &user, nil
}
