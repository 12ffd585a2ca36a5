package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/errno"
)

type WatchPageService struct {
	ctx context.Context
}

func NewWatchPageService(ctx context.Context) *WatchPageService {
	return &WatchPageService{ctx: ctx}
}

// WatchPage is the data contract for one video page: the video with its
// author, comments newest first, the reaction totals, and whether the current
// session's view has already been counted (filled in by the handler).
type WatchPage struct {
	Video        *db.VideoWithAuthor   `json:"video"`
	Comments     []*db.CommentWithUser `json:"comments"`
	CommentCount int64                 `json:"comment_count"`
	LikeCount    int64                 `json:"like_count"`
	DislikeCount int64                 `json:"dislike_count"`
	ViewCounted  bool                  `json:"view_counted"`
}

func (v *WatchPageService) WatchPage(videoId int64) (*WatchPage, error) {
	video, err := db.GetVideoWithAuthor(v.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoWithAuthor failed")
	}
	if video == nil {
		return nil, errno.VideoNotExistErr
	}

	comments, err := db.GetVideoCommentList(v.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoCommentList failed")
	}
	commentCount, err := db.GetVideoCommentCount(v.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoCommentCount failed")
	}
	likeCount, err := db.GetVideoLikeCount(v.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoLikeCount failed")
	}
	dislikeCount, err := db.GetVideoDislikeCount(v.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetVideoDislikeCount failed")
	}

	return &WatchPage{
		Video:        video,
		Comments:     comments,
		CommentCount: commentCount,
		LikeCount:    likeCount,
		DislikeCount: dislikeCount,
	}, nil
}
