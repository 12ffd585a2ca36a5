package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/todaytheofficial/neotube/cmd/api/router/authfunc"
	"github.com/todaytheofficial/neotube/config"
	"github.com/todaytheofficial/neotube/pkg/constants"
	"github.com/todaytheofficial/neotube/pkg/errno"
	"github.com/todaytheofficial/neotube/pkg/session"
)

func Logout(ctx context.Context, c *app.RequestContext) {
	sid := authfunc.GetSessionId(c)
	if sid != "" {
		if err := session.Default.Destroy(ctx, sid); err != nil {
			hlog.CtxErrorf(ctx, "session destroy failed: %v", err)
		}
	}
	c.SetCookie(constants.SessionCookieName, "", -1,
		"/", config.ConfigInfo.Session.CookieDomain, protocol.CookieSameSiteLaxMode, false, true)
	SendResponse(c, errno.Success, nil)
}
