package oss

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"github.com/todaytheofficial/neotube/config"
)

const (
	pictureBucket = "picture"
	videoBucket   = "video"
	// MinIO default region.
	bucketLocation = "us-east-1"
)

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return errors.Wrapf(err, "check bucket %s failed", bucketName)
	}
	if !exists {
		err = minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: bucketLocation})
		if err != nil {
			return errors.Wrapf(err, "create bucket %s failed", bucketName)
		}
	}
	return nil
}

func publicURL(bucketName, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicURL, bucketName, objectName)
}

// UploadAvatar stores a user's avatar image and returns its public URL.
func UploadAvatar(ctx context.Context, data []byte, uid string, contentType string) (string, error) {
	if err := ensureBucket(ctx, pictureBucket); err != nil {
		return "", err
	}

	var suffix string
	switch contentType {
	case "image/jpeg", "image/jpg":
		suffix = ".jpg"
	case "image/png":
		suffix = ".png"
	default:
		return "", errors.Errorf("unsupported image format: %s", contentType)
	}

	objectName := "avatar/" + uid + suffix
	_, err := minioClient.PutObject(ctx, pictureBucket, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload avatar")
	}
	return publicURL(pictureBucket, objectName), nil
}

// UploadVideo stores the media file for vid from a local path.
func UploadVideo(ctx context.Context, path, vid string) (string, error) {
	if err := ensureBucket(ctx, videoBucket); err != nil {
		return "", err
	}
	objectName := "video/" + vid + "/video.mp4"
	_, err := minioClient.FPutObject(ctx, videoBucket, objectName, path,
		minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload video")
	}
	return publicURL(videoBucket, objectName), nil
}

// UploadCover stores the thumbnail for vid from a local path.
func UploadCover(ctx context.Context, path, vid string) (string, error) {
	if err := ensureBucket(ctx, videoBucket); err != nil {
		return "", err
	}
	objectName := "video/" + vid + "/cover.jpg"
	_, err := minioClient.FPutObject(ctx, videoBucket, objectName, path,
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload cover")
	}
	return publicURL(videoBucket, objectName), nil
}

// OpenVideo opens the stored media object for streaming to a client.
func OpenVideo(ctx context.Context, vid string) (io.ReadCloser, int64, error) {
	objectName := "video/" + vid + "/video.mp4"
	obj, err := minioClient.GetObject(ctx, videoBucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to open video object")
	}
	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		return nil, 0, errors.Wrap(err, "failed to stat video object")
	}
	return obj, stat.Size, nil
}
