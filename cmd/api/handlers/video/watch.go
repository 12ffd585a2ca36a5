package handlers

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/todaytheofficial/neotube/cmd/api/router/authfunc"
	interaction "github.com/todaytheofficial/neotube/cmd/interaction/service"
	"github.com/todaytheofficial/neotube/cmd/video/service"
	"github.com/todaytheofficial/neotube/pkg/errno"
	"github.com/todaytheofficial/neotube/pkg/session"
)

// Watch serves the watch page data and registers the view. Only authenticated
// sessions have their view counted, and only once per session.
func Watch(ctx context.Context, c *app.RequestContext) {
	videoId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	identity := authfunc.GetIdentity(c)
	sid := authfunc.GetSessionId(c)

	viewSvc := interaction.NewViewService(ctx, session.Default)
	counted, err := viewSvc.RegisterView(ctx, sid, identity, videoId)
	if err != nil {
		hlog.CtxErrorf(ctx, "view registration failed, videoId: %d, err: %v", videoId, err)
	}

	page, err := service.NewWatchPageService(ctx).WatchPage(videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	if counted {
		page.ViewCounted = true
	} else if sid != "" {
		viewed, err := viewSvc.HasViewed(ctx, sid, videoId)
		if err != nil {
			hlog.CtxErrorf(ctx, "view-memory lookup failed, videoId: %d, err: %v", videoId, err)
		}
		page.ViewCounted = viewed
	}

	SendResponse(c, errno.Success, page)
}
