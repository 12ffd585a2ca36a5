package authfunc

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/todaytheofficial/neotube/pkg/constants"
	"github.com/todaytheofficial/neotube/pkg/errno"
	"github.com/todaytheofficial/neotube/pkg/session"
)

const (
	identityKey  = "identity"
	sessionIdKey = "session_id"
)

// SessionAuth resolves the session cookie into the caller's identity. It never
// rejects: anonymous requests pass through without an identity.
func SessionAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		sid := string(c.Cookie(constants.SessionCookieName))
		if sid != "" {
			c.Set(sessionIdKey, sid)
			identity, err := session.Default.Get(ctx, sid)
			if err != nil {
				hlog.CtxErrorf(ctx, "session lookup failed: %v", err)
			} else if identity != nil {
				c.Set(identityKey, identity)
			}
		}
		c.Next(ctx)
	}
}

// RequireAuth rejects unauthenticated callers before any mutation happens.
func RequireAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if GetIdentity(c) == nil {
			c.JSON(consts.StatusUnauthorized, map[string]interface{}{
				"code":    errno.AuthorizationFailedCode,
				"message": errno.AuthorizationFailedErr.ErrMsg,
			})
			c.Abort()
			return
		}
		c.Next(ctx)
	}
}

func GetIdentity(c *app.RequestContext) *session.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, ok := v.(*session.Identity)
	if !ok {
		return nil
	}
	return identity
}

func GetSessionId(c *app.RequestContext) string {
	v, ok := c.Get(sessionIdKey)
	if !ok {
		return ""
	}
	sid, _ := v.(string)
	return sid
}
