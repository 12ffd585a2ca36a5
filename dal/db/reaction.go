package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/todaytheofficial/neotube/cmd/model"
	"github.com/todaytheofficial/neotube/pkg/constants"
	"gorm.io/gorm"
)

// ToggleVideoLike applies one like toggle atomically: the dislike (if any) is
// dropped, then an existing like is removed or a fresh one inserted. All three
// steps commit or roll back together.
func ToggleVideoLike(ctx context.Context, userId, videoId int64) error {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return toggleReaction(tx, userId, videoId, &model.VideoDislike{}, &model.VideoLike{},
			&model.VideoLike{
				UserId:    userId,
				VideoId:   videoId,
				CreatedAt: time.Now().Format(constants.DataFormate),
			})
	})
	if err != nil {
		return errors.Wrapf(err, "ToggleVideoLike failed, userId: %d, videoId: %d", userId, videoId)
	}
	return nil
}

// ToggleVideoDislike is the mirror of ToggleVideoLike.
func ToggleVideoDislike(ctx context.Context, userId, videoId int64) error {
	err := DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return toggleReaction(tx, userId, videoId, &model.VideoLike{}, &model.VideoDislike{},
			&model.VideoDislike{
				UserId:    userId,
				VideoId:   videoId,
				CreatedAt: time.Now().Format(constants.DataFormate),
			})
	})
	if err != nil {
		return errors.Wrapf(err, "ToggleVideoDislike failed, userId: %d, videoId: %d", userId, videoId)
	}
	return nil
}

func toggleReaction(tx *gorm.DB, userId, videoId int64, opposite, held, fresh interface{}) error {
	if err := tx.Where("user_id = ? AND video_id = ?", userId, videoId).Delete(opposite).Error; err != nil {
		return err
	}
	var count int64
	if err := tx.Model(held).Where("user_id = ? AND video_id = ?", userId, videoId).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return tx.Where("user_id = ? AND video_id = ?", userId, videoId).Delete(held).Error
	}
	return tx.Create(fresh).Error
}

func HasVideoLike(ctx context.Context, userId, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("user_id = ? AND video_id = ?", userId, videoId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "HasVideoLike failed, userId: %d, videoId: %d", userId, videoId)
	}
	return count > 0, nil
}

func GetVideoLikeCount(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetVideoLikeCount failed, videoId: %d", videoId)
	}
	return count, nil
}

func HasVideoDislike(ctx context.Context, userId, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoDislike{}).
		Where("user_id = ? AND video_id = ?", userId, videoId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "HasVideoDislike failed, userId: %d, videoId: %d", userId, videoId)
	}
	return count > 0, nil
}

func GetVideoDislikeCount(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoDislike{}).
		Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetVideoDislikeCount failed, videoId: %d", videoId)
	}
	return count, nil
}
