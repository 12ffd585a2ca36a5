package handlers

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/errno"
	"github.com/todaytheofficial/neotube/pkg/oss"
)

// VideoStream proxies the stored media object to the client.
func VideoStream(ctx context.Context, c *app.RequestContext) {
	videoId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	video, err := db.GetVideo(ctx, videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if video == nil {
		SendResponse(c, errno.VideoNotExistErr, nil)
		return
	}

	reader, size, err := oss.OpenVideo(ctx, strconv.FormatInt(videoId, 10))
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	c.SetContentType("video/mp4")
	c.SetBodyStream(reader, int(size))
}
