package handlers

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/todaytheofficial/neotube/cmd/user/service"
	"github.com/todaytheofficial/neotube/pkg/errno"
)

// GetChannel serves a creator's page. The URL carries both the username and
// the id; a mismatch is treated as an unknown channel.
func GetChannel(ctx context.Context, c *app.RequestContext) {
	username := c.Param("username")
	userId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	page, err := service.NewGetChannelService(ctx).GetChannel(userId, username)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, page)
}
