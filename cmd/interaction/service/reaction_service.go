package service

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/lock"
	"github.com/todaytheofficial/neotube/pkg/ws"
)

type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// ReactionService toggles a user's like/dislike on a video. The two sets are
// mutually exclusive per (user, video): reacting with one kind always removes
// the other first, and reacting with the held kind removes it (un-react).
type ReactionService struct {
	ctx    context.Context
	locker lock.KeyLocker
	hub    *ws.Hub
}

func NewReactionService(ctx context.Context, locker lock.KeyLocker, hub *ws.Hub) *ReactionService {
	return &ReactionService{
		ctx:    ctx,
		locker: locker,
		hub:    hub,
	}
}

// React runs the toggle and returns the fresh like/dislike totals for the
// video. The toggle commits as one transaction, and the whole read-modify-write
// sequence holds the (user, video) key lock, so duplicate in-flight requests
// serialize instead of double-writing.
func (s *ReactionService) React(ctx context.Context, userId, videoId int64, kind ReactionKind) (likeCount, dislikeCount int64, err error) {
	unlock, err := s.locker.Lock(ctx, fmt.Sprintf("reaction:%d:%d", userId, videoId))
	if err != nil {
		return 0, 0, err
	}
	defer unlock()

	switch kind {
	case ReactionLike:
		err = db.ToggleVideoLike(ctx, userId, videoId)
	case ReactionDislike:
		err = db.ToggleVideoDislike(ctx, userId, videoId)
	default:
		return 0, 0, fmt.Errorf("invalid reaction kind: %s", kind)
	}
	if err != nil {
		return 0, 0, err
	}

	likeCount, dislikeCount, err = s.Counts(ctx, videoId)
	if err != nil {
		return 0, 0, err
	}

	if s.hub != nil {
		s.hub.Broadcast(ws.NewReactionUpdate(videoId, likeCount, dislikeCount))
	}
	return likeCount, dislikeCount, nil
}

// Counts returns the current like/dislike totals. A nonexistent video simply
// counts as zero on both sides.
func (s *ReactionService) Counts(ctx context.Context, videoId int64) (int64, int64, error) {
	likeCount, err := db.GetVideoLikeCount(ctx, videoId)
	if err != nil {
		return 0, 0, err
	}
	dislikeCount, err := db.GetVideoDislikeCount(ctx, videoId)
	if err != nil {
		return 0, 0, err
	}
	return likeCount, dislikeCount, nil
}

// HasReacted reports the caller's current reaction, for the watch page.
func (s *ReactionService) HasReacted(ctx context.Context, userId, videoId int64) (liked, disliked bool, err error) {
	liked, err = db.HasVideoLike(ctx, userId, videoId)
	if err != nil {
		return false, false, err
	}
	disliked, err = db.HasVideoDislike(ctx, userId, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to check dislike state: %v", err)
		return false, false, err
	}
	return liked, disliked, nil
}
