package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
	interaction "github.com/todaytheofficial/neotube/cmd/api/handlers/interaction"
	wshandler "github.com/todaytheofficial/neotube/cmd/api/handlers/ws"
	"github.com/todaytheofficial/neotube/cmd/api/infras/redis"
	"github.com/todaytheofficial/neotube/cmd/api/router"
	"github.com/todaytheofficial/neotube/config"
	"github.com/todaytheofficial/neotube/dal/db"
	"github.com/todaytheofficial/neotube/pkg/errno"
	"github.com/todaytheofficial/neotube/pkg/lock"
	"github.com/todaytheofficial/neotube/pkg/oss"
	"github.com/todaytheofficial/neotube/pkg/session"
	"github.com/todaytheofficial/neotube/pkg/ws"
)

func Init() {
	config.Init()
	db.Init()
	if err := oss.InitMinio(); err != nil {
		hlog.Errorf("minio init failed: %v", err)
	}

	hub := ws.NewHub()
	wshandler.Init(hub)

	// Sessions and the per-key lock ride on Redis when it is configured;
	// otherwise a single instance falls back to in-process state.
	if config.ConfigInfo.Redis.Addr != "" {
		redis.Load()
		session.Init(redis.Client)
		interaction.Init(lock.NewRedsyncLocker(redis.Client), hub)
	} else {
		session.InitMemory()
		interaction.Init(lock.NewLocalLocker(), hub)
	}
}

func main() {
	Init()

	r := server.New(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(16*1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	router.Register(r)

	// The real-time channel runs on its own listener, like the rest of the
	// HTTP surface but without the middleware stack.
	wsServer := server.Default(
		server.WithHostPorts(config.ConfigInfo.Server.WsAddr),
	)
	wsServer.NoHijackConnPool = true
	wsServer.GET("/ws", wshandler.Handler)

	go wsServer.Spin()
	r.Spin()
}
