package oss

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/todaytheofficial/neotube/config"
)

var minioClient *minio.Client

func InitMinio() error {
	cfg := config.ConfigInfo.Minio

	hlog.Infof("Initializing MinIO client with endpoint: %s", cfg.Endpoint)

	var err error
	minioClient, err = minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return err
	}

	hlog.Info("Connect Minio Success")
	return nil
}
