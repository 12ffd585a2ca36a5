package handlers

import (
	"context"
	"strconv"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/todaytheofficial/neotube/cmd/api/router/authfunc"
	"github.com/todaytheofficial/neotube/cmd/interaction/service"
	"github.com/todaytheofficial/neotube/pkg/errno"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	var param CreateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if strings.TrimSpace(param.Text) == "" {
		SendResponse(c, errno.ParamErr.WithMessage("comment text is required"), nil)
		return
	}

	identity := authfunc.GetIdentity(c)
	_, err = service.NewCommentService(ctx, hub).PostComment(ctx, identity, videoId, param.Text)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"status": "ok"})
}
