package db

import (
	"context"

	"github.com/pkg/errors"
	"github.com/todaytheofficial/neotube/cmd/model"
)

// CommentWithUser is a comment row joined with its author, the shape the watch
// page renders.
type CommentWithUser struct {
	model.Comment
	UserName  string `gorm:"column:user_name" json:"username"`
	AvatarUrl string `gorm:"column:avatar_url" json:"avatar"`
}

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed, videoId: %d", comment.VideoId)
	}
	return nil
}

// GetVideoCommentList returns a video's comments, newest first.
func GetVideoCommentList(ctx context.Context, videoId int64) ([]*CommentWithUser, error) {
	comments := make([]*CommentWithUser, 0)
	err := DB.WithContext(ctx).Model(&model.Comment{}).
		Select("comments.*, users.user_name, users.avatar_url").
		Joins("JOIN users ON comments.user_id = users.user_id").
		Where("comments.video_id = ?", videoId).
		Order("comments.comment_id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrapf(err, "GetVideoCommentList failed, videoId: %d", videoId)
	}
	return comments, nil
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "GetVideoCommentCount failed, videoId: %d", videoId)
	}
	return count, nil
}
