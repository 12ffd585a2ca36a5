package service

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/session"
)

// ViewService counts a video view at most once per session. Anonymous visits
// are never counted.
type ViewService struct {
	ctx   context.Context
	store session.Store
}

func NewViewService(ctx context.Context, store session.Store) *ViewService {
	return &ViewService{
		ctx:   ctx,
		store: store,
	}
}

// RegisterView claims the (session, video) pair in the session's view-memory
// and, when this is the first claim, bumps the stored view counter exactly
// once. The claim itself is atomic, so concurrent requests from the same
// session cannot double-increment.
func (s *ViewService) RegisterView(ctx context.Context, sid string, identity *session.Identity, videoId int64) (bool, error) {
	if identity == nil {
		return false, nil
	}

	first, err := s.store.MarkViewed(ctx, sid, videoId)
	if err != nil {
		return false, err
	}
	if !first {
		return false, nil
	}

	if err := db.IncrVideoVisit(ctx, videoId); err != nil {
		hlog.CtxErrorf(ctx, "view counted in session but visit increment failed, videoId: %d, err: %v", videoId, err)
		return false, err
	}
	return true, nil
}

// HasViewed reports whether this session's view was already counted.
func (s *ViewService) HasViewed(ctx context.Context, sid string, videoId int64) (bool, error) {
	if sid == "" {
		return false, nil
	}
	return s.store.HasViewed(ctx, sid, videoId)
}
