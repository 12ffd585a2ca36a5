package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/websocket"
	"github.com/todaytheofficial/neotube/pkg/ws"
)

var upgrader = websocket.HertzUpgrader{
	CheckOrigin: func(ctx *app.RequestContext) bool {
		return true
	},
}

var hub *ws.Hub

func Init(h *ws.Hub) {
	hub = h
}

// Handler upgrades the connection and pumps hub events to the client until it
// disconnects. Clients send nothing after the handshake; the read loop exists
// only to notice the connection going away.
func Handler(ctx context.Context, c *app.RequestContext) {
	err := upgrader.Upgrade(c, func(conn *websocket.Conn) {
		client := hub.Register()
		defer hub.Unregister(client)

		go func() {
			for msg := range client.C {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					hlog.Info("ws write failed: ", err)
					break
				}
			}
			conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	if err != nil {
		hlog.CtxErrorf(ctx, "ws upgrade failed: %v", err)
		c.JSON(consts.StatusBadRequest, map[string]string{"error": "upgrade failed"})
		return
	}
}
