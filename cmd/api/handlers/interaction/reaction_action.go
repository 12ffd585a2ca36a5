package handlers

import (
	"context"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/todaytheofficial/neotube/cmd/api/router/authfunc"
	"github.com/todaytheofficial/neotube/cmd/interaction/service"
	"github.com/todaytheofficial/neotube/pkg/errno"
)

// LikeAction toggles the caller's like on a video. Liking an already-liked
// video removes the like; liking a disliked video flips it.
func LikeAction(ctx context.Context, c *app.RequestContext) {
	react(ctx, c, service.ReactionLike)
}

// DislikeAction is the mirror of LikeAction for dislikes.
func DislikeAction(ctx context.Context, c *app.RequestContext) {
	react(ctx, c, service.ReactionDislike)
}

func react(ctx context.Context, c *app.RequestContext, kind service.ReactionKind) {
	videoId, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendResponse(c, errno.ParamErr, nil)
		return
	}
	identity := authfunc.GetIdentity(c)

	_, _, err = service.NewReactionService(ctx, keyLocker, hub).
		React(ctx, identity.UserId, videoId, kind)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"status": "ok"})
}
