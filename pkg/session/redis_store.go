package session

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/todaytheofficial/neotube/pkg/constants"
)

const (
	sessionKeyPrefix = "session:"
	viewedKeyPrefix  = "session:viewed:"
)

// RedisStore keeps sessions in Redis: a hash for the identity and a set for
// the view-memory, both expiring with the session.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, sid string) (*Identity, error) {
	fields, err := s.client.HGetAll(ctx, sessionKeyPrefix+sid).Result()
	if err != nil {
		return nil, errors.Wrap(err, "session get failed")
	}
	if len(fields) == 0 {
		return nil, nil
	}
	userId, err := strconv.ParseInt(fields["user_id"], 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "session has malformed user_id")
	}
	return &Identity{
		UserId:   userId,
		UserName: fields["user_name"],
		Avatar:   fields["avatar"],
	}, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, identity *Identity, ttl time.Duration) error {
	key := sessionKeyPrefix + sid
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"user_id":   identity.UserId,
		"user_name": identity.UserName,
		"avatar":    identity.Avatar,
	})
	pipe.Expire(ctx, key, ttl)
	pipe.Expire(ctx, viewedKeyPrefix+sid, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "session set failed")
	}
	return nil
}

func (s *RedisStore) Destroy(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sid, viewedKeyPrefix+sid).Err(); err != nil {
		return errors.Wrap(err, "session destroy failed")
	}
	return nil
}

func (s *RedisStore) MarkViewed(ctx context.Context, sid string, videoId int64) (bool, error) {
	ttl, err := s.client.TTL(ctx, sessionKeyPrefix+sid).Result()
	if err != nil {
		return false, errors.Wrap(err, "session ttl lookup failed")
	}
	switch {
	case ttl > 0:
		// Keep the view-memory on the session's clock.
	case ttl == -1:
		// Session key without an expiry; bound the view-memory anyway.
		ttl = constants.SessionDefaultTTL
	default:
		// Session gone. Writing the viewed set now would leave an orphan key
		// with no expiry.
		return false, nil
	}

	key := viewedKeyPrefix + sid
	added, err := s.client.SAdd(ctx, key, videoId).Result()
	if err != nil {
		return false, errors.Wrap(err, "session mark viewed failed")
	}
	s.client.Expire(ctx, key, ttl)
	return added == 1, nil
}

func (s *RedisStore) HasViewed(ctx context.Context, sid string, videoId int64) (bool, error) {
	viewed, err := s.client.SIsMember(ctx, viewedKeyPrefix+sid, videoId).Result()
	if err != nil {
		return false, errors.Wrap(err, "session has viewed failed")
	}
	return viewed, nil
}
