package service

import (
	"context"

	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/constants"
)

type FeedListService struct {
	ctx context.Context
}

func NewFeedListService(ctx context.Context) *FeedListService {
	return &FeedListService{ctx: ctx}
}

// FeedList is the home feed: videos ranked by descending view count,
// recomputed on each request. The page size is clamped to the allowed range.
func (v *FeedListService) FeedList(limit, offset int) ([]*db.VideoWithAuthor, error) {
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return db.FeedList(v.ctx, limit, offset)
}
