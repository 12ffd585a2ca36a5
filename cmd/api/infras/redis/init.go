package redis

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	goredis "github.com/redis/go-redis/v9"
	"github.com/todaytheofficial/neotube/config"
)

var Client *goredis.Client

func Load() {
	Client = goredis.NewClient(&goredis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})

	if err := Client.Ping(context.Background()).Err(); err != nil {
		hlog.Info("redis ping failed: ", err)
	}
}
