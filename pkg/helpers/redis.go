package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func RedisSetJSON(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, b, ttl).Err()
}

func RedisGetJSON[T any](ctx context.Context, rdb *redis.Client, key string, dest *T) (bool, error) {
	res, err := rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(res, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Session is the record kept for every issued token
type Session struct {
	UserID   string    `json:"user_id"`
	IssuedAt time.Time `json:"issued_at"`
}

// SessionStore keeps login sessions in Redis so tokens can be revoked before they expire.
type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

func keySession(sid string) string      { return "session:" + sid }
func keyUserSessions(uid string) string { return "user:sessions:" + uid }

// Save records sid for userID until ttl elapses.
func (s *SessionStore) Save(ctx context.Context, userID, sid string, ttl time.Duration) error {
	if err := RedisSetJSON(ctx, s.rdb, keySession(sid), Session{UserID: userID, IssuedAt: time.Now().UTC()}, ttl); err != nil {
		return err
	}
	pipe := s.rdb.TxPipeline()
	pipe.SAdd(ctx, keyUserSessions(userID), sid)
	pipe.Expire(ctx, keyUserSessions(userID), ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Active reports whether sid is a live session of userID.
func (s *SessionStore) Active(ctx context.Context, userID, sid string) (bool, error) {
	var sess Session
	ok, err := RedisGetJSON(ctx, s.rdb, keySession(sid), &sess)
	if err != nil || !ok {
		return false, err
	}
	return sess.UserID == userID, nil
}

// RevokeUser drops every session of userID.
func (s *SessionStore) RevokeUser(ctx context.Context, userID string) error {
	sids, err := s.rdb.SMembers(ctx, keyUserSessions(userID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	keys := make([]string, 0, len(sids)+1)
	for _, sid := range sids {
		keys = append(keys, keySession(sid))
	}
	keys = append(keys, keyUserSessions(userID))
	return s.rdb.Del(ctx, keys...).Err()
}
