package handlers

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/todaytheofficial/neotube/cmd/video/service"
	"github.com/todaytheofficial/neotube/pkg/errno"
)

func FeedList(ctx context.Context, c *app.RequestContext) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	videos, err := service.NewFeedListService(ctx).FeedList(limit, offset)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
