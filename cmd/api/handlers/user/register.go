package handlers

import (
	"context"
	"io"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/todaytheofficial/neotube/cmd/user/service"
	"github.com/todaytheofficial/neotube/pkg/errno"
	"github.com/todaytheofficial/neotube/pkg/oss"
)

const defaultAvatar = "default.png"

func Register(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.UserName == "" || param.Password == "" {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	// An avatar is optional at registration; fall back to the stock one.
	avatarUrl := defaultAvatar
	if fh, err := c.FormFile("avatar"); err == nil {
		f, err := fh.Open()
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		contentType := fh.Header.Get("Content-Type")
		avatarUrl, err = oss.UploadAvatar(ctx, data, uuid.New().String(), contentType)
		if err != nil {
			hlog.CtxErrorf(ctx, "avatar upload failed: %v", err)
			avatarUrl = defaultAvatar
		}
	}

	user, err := service.NewCreateUserService(ctx).CreateUser(param.UserName, param.Password, avatarUrl)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}
