package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/todaytheofficial/neotube/cmd/model"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/constants"
	"github.com/todaytheofficial/neotube/pkg/oss"
	"github.com/todaytheofficial/neotube/pkg/utils"
)

type VideoUploadService struct {
	ctx context.Context
}

func NewVideoUploadService(ctx context.Context) *VideoUploadService {
	return &VideoUploadService{ctx: ctx}
}

// UploadVideo registers the video row, pushes the media and thumbnail into
// object storage, then fills in the URLs. When no thumbnail was supplied the
// first frame of the video is extracted as the cover.
func (v *VideoUploadService) UploadVideo(userId int64, title, description, videoPath, thumbPath string) (*model.Video, error) {
	video := &model.Video{
		UserId:      userId,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().Format(constants.DataFormate),
	}
	if err := db.InsertVideo(v.ctx, video); err != nil {
		return nil, errors.WithMessage(err, "dao.InsertVideo failed")
	}
	vid := fmt.Sprint(video.VideoId)

	videoUrl, err := oss.UploadVideo(v.ctx, videoPath, vid)
	if err != nil {
		return nil, errors.WithMessage(err, "oss.UploadVideo failed")
	}

	if thumbPath == "" {
		// Extract next to the staged video so the handler's staging-dir
		// cleanup removes the frame too.
		thumbPath, err = utils.GetVideoThumbnail(videoPath, filepath.Dir(videoPath))
		if err != nil {
			hlog.CtxErrorf(v.ctx, "thumbnail extraction failed, videoId: %s, err: %v", vid, err)
			thumbPath = ""
		}
	}

	var coverUrl string
	if thumbPath != "" {
		coverUrl, err = oss.UploadCover(v.ctx, thumbPath, vid)
		if err != nil {
			return nil, errors.WithMessage(err, "oss.UploadCover failed")
		}
	}

	if err := db.UpdateVideoUrl(v.ctx, video.VideoId, videoUrl, coverUrl); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateVideoUrl failed")
	}
	video.VideoUrl = videoUrl
	video.CoverUrl = coverUrl
	return video, nil
}
