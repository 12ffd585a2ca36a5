package service

import (
	"context"
	"time"

	"github.com/todaytheofficial/neotube/cmd/model"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/constants"
	"github.com/todaytheofficial/neotube/pkg/session"
	"github.com/todaytheofficial/neotube/pkg/ws"
)

// CommentService appends comments and fans them out to connected viewers.
// Comments are append-only; there is no edit or delete.
type CommentService struct {
	ctx context.Context
	hub *ws.Hub
}

func NewCommentService(ctx context.Context, hub *ws.Hub) *CommentService {
	return &CommentService{
		ctx: ctx,
		hub: hub,
	}
}

func (s *CommentService) PostComment(ctx context.Context, identity *session.Identity, videoId int64, text string) (*model.Comment, error) {
	comment := &model.Comment{
		UserId:    identity.UserId,
		VideoId:   videoId,
		Content:   text,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := db.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(ws.NewCommentCreated(videoId, identity.UserName, identity.Avatar, text))
	}
	return comment, nil
}

// ListComments returns a video's comments, newest first.
func (s *CommentService) ListComments(ctx context.Context, videoId int64) ([]*db.CommentWithUser, error) {
	return db.GetVideoCommentList(ctx, videoId)
}
