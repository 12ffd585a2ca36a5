package handlers

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/todaytheofficial/neotube/pkg/errno"
	"github.com/todaytheofficial/neotube/pkg/lock"
	"github.com/todaytheofficial/neotube/pkg/ws"
)

// Package-level collaborators, wired once at startup.
var (
	keyLocker lock.KeyLocker
	hub       *ws.Hub
)

func Init(locker lock.KeyLocker, h *ws.Hub) {
	keyLocker = locker
	hub = h
}

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type CreateCommentParam struct {
	Text string `json:"text" form:"text"`
}
