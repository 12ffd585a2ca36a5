package handlers

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/todaytheofficial/neotube/cmd/api/router/authfunc"
	"github.com/todaytheofficial/neotube/cmd/video/service"
	"github.com/todaytheofficial/neotube/config"
	"github.com/todaytheofficial/neotube/pkg/errno"
)

// Upload receives the media and optional thumbnail as multipart files, stages
// them on disk, and hands them to the upload service.
func Upload(ctx context.Context, c *app.RequestContext) {
	identity := authfunc.GetIdentity(c)

	var param UploadParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if param.Title == "" {
		SendResponse(c, errno.ParamErr, nil)
		return
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("video file is required"), nil)
		return
	}

	tmpDir := filepath.Join(config.ConfigInfo.Upload.TmpDir, uuid.New().String())
	if err := os.MkdirAll(tmpDir, os.ModePerm); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer os.RemoveAll(tmpDir)

	videoPath := filepath.Join(tmpDir, "video.mp4")
	if err := c.SaveUploadedFile(videoFile, videoPath); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	thumbPath := ""
	if thumbFile, err := c.FormFile("thumbnail"); err == nil {
		thumbPath = filepath.Join(tmpDir, "thumbnail"+filepath.Ext(thumbFile.Filename))
		if err := c.SaveUploadedFile(thumbFile, thumbPath); err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
	}

	video, err := service.NewVideoUploadService(ctx).
		UploadVideo(identity.UserId, param.Title, param.Description, videoPath, thumbPath)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
