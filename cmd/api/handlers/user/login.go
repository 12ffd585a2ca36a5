package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/todaytheofficial/neotube/cmd/user/service"
	"github.com/todaytheofficial/neotube/config"
	"github.com/todaytheofficial/neotube/pkg/constants"
	"github.com/todaytheofficial/neotube/pkg/errno"
	"github.com/todaytheofficial/neotube/pkg/session"
)

func Login(ctx context.Context, c *app.RequestContext) {
	var param LoginParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	user, err := service.NewLoginUserService(ctx).LoginUser(param.UserName, param.Password)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	// A fresh session, stretched to the long validity window so the browser
	// stays signed in.
	sid := session.NewSessionId()
	identity := &session.Identity{
		UserId:   user.UserId,
		UserName: user.UserName,
		Avatar:   user.AvatarUrl,
	}
	if err := session.Default.Set(ctx, sid, identity, constants.SessionLongTTL); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	c.SetCookie(constants.SessionCookieName, sid, int(constants.SessionLongTTL.Seconds()),
		"/", config.ConfigInfo.Session.CookieDomain, protocol.CookieSameSiteLaxMode, false, true)

	SendResponse(c, errno.Success, identity)
}
