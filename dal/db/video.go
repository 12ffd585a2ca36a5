package db

import (
	"context"

	"github.com/pkg/errors"
	"github.com/todaytheofficial/neotube/cmd/model"
	"gorm.io/gorm"
)

// VideoWithAuthor carries a video row joined with its uploader, the shape the
// feed and watch pages render.
type VideoWithAuthor struct {
	model.Video
	UserName   string `gorm:"column:user_name" json:"user_name"`
	UserAvatar string `gorm:"column:avatar_url" json:"user_avatar"`
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed, userId: %d", video.UserId)
	}
	return nil
}

func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetVideo failed, videoId: %d", videoId)
	}
	return &video, nil
}

func GetVideoWithAuthor(ctx context.Context, videoId int64) (*VideoWithAuthor, error) {
	var video VideoWithAuthor
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("videos.*, users.user_name, users.avatar_url").
		Joins("JOIN users ON videos.user_id = users.user_id").
		Where("videos.video_id = ?", videoId).
		First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "GetVideoWithAuthor failed, videoId: %d", videoId)
	}
	return &video, nil
}

// FeedList returns one page of videos ordered by descending view count. Ties
// break on descending video_id so the ordering is stable across pages.
func FeedList(ctx context.Context, limit, offset int) ([]*VideoWithAuthor, error) {
	videos := make([]*VideoWithAuthor, 0)
	err := DB.WithContext(ctx).Model(&model.Video{}).
		Select("videos.*, users.user_name, users.avatar_url").
		Joins("JOIN users ON videos.user_id = users.user_id").
		Order("visit_count DESC, video_id DESC").
		Limit(limit).Offset(offset).
		Find(&videos).Error
	if err != nil {
		return nil, errors.Wrapf(err, "FeedList failed, err: %v", err)
	}
	return videos, nil
}

// VideoListByUser returns a user's uploads, newest first.
func VideoListByUser(ctx context.Context, userId int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Order("video_id DESC").Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "VideoListByUser failed, userId: %d", userId)
	}
	return videos, nil
}

// UpdateVideoUrl fills in the storage URLs once the upload has landed.
func UpdateVideoUrl(ctx context.Context, videoId int64, videoUrl, coverUrl string) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Updates(map[string]interface{}{
			"video_url": videoUrl,
			"cover_url": coverUrl,
		}).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideoUrl failed, videoId: %d", videoId)
	}
	return nil
}

// IncrVideoVisit bumps the view counter in a single UPDATE so interleaved
// requests cannot lose increments.
func IncrVideoVisit(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("visit_count", gorm.Expr("visit_count + 1")).Error; err != nil {
		return errors.Wrapf(err, "IncrVideoVisit failed, videoId: %d", videoId)
	}
	return nil
}
