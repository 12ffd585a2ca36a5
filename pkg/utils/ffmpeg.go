package utils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// GetVideoThumbnail grabs the first frame of the video so uploads without an
// explicit thumbnail still get a cover image.
func GetVideoThumbnail(videoPath, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return "", errors.WithMessage(err, "failed to create thumbnail dir")
	}
	outputPath := filepath.Join(outputDir, "thumbnail.jpg")
	err := ffmpeg.Input(videoPath).
		Output(outputPath, ffmpeg.KwArgs{
			"ss":      "00:00:00",
			"vframes": "1",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return "", errors.WithMessage(err, "failed to generate the thumbnail")
	}
	return outputPath, nil
}
