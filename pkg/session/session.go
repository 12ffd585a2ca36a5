// Package session holds the server side of the browser session: the caller's
// identity triple and the per-session set of videos already counted toward
// view totals. The view-memory lives and dies with the session itself.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Identity is the stable triple the identity layer supplies per request.
type Identity struct {
	UserId   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Avatar   string `json:"avatar"`
}

type Store interface {
	// Get resolves a session id to its identity. A nil identity with nil
	// error means the session is unknown or expired.
	Get(ctx context.Context, sid string) (*Identity, error)

	// Set writes the identity under sid with the given lifetime. Login uses
	// this to stretch the session to its long validity window.
	Set(ctx context.Context, sid string, identity *Identity, ttl time.Duration) error

	// Destroy drops the session and its view-memory.
	Destroy(ctx context.Context, sid string) error

	// MarkViewed records videoId in the session's view-memory. It reports
	// true only the first time the pair is seen, atomically, so concurrent
	// requests cannot both claim the first view.
	MarkViewed(ctx context.Context, sid string, videoId int64) (bool, error)

	// HasViewed reports whether videoId is already in the view-memory.
	HasViewed(ctx context.Context, sid string, videoId int64) (bool, error)
}

// NewSessionId mints an opaque session id.
func NewSessionId() string {
	return uuid.New().String()
}
