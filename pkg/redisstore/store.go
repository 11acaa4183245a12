package redisstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authtoken/pkg/session"
)

const defaultKeyPrefix = "authtoken"

// Store implements session.Store on top of Redis.
type Store struct {
	client *redis.Client
	prefix string
}

var _ session.Store = (*Store)(nil)

// StoreOption is a functional option for configuring the Store
type StoreOption func(*Store)

// WithKeyPrefix changes the Redis key namespace
func WithKeyPrefix(prefix string) StoreOption {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// New creates a Redis-backed session store
func New(client *redis.Client, opts ...StoreOption) *Store {
	s := &Store{client: client, prefix: defaultKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) userHashKey(userKey string) string {
	return s.prefix + ":" + userKey
}

func (s *Store) usersSetKey() string {
	return s.prefix + ":users"
}

// Get retrieves the session stored under (userKey, sessionKey)
func (s *Store) Get(ctx context.Context, userKey, sessionKey string) (*session.Session, error) {
	data, err := s.client.HGet(ctx, s.userHashKey(userKey), sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrSessionNotFound
		}
		return nil, err
	}

	var sess session.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Put upserts the session and registers its user key
func (s *Store) Put(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.UserKey == "" || sess.SessionKey == "" {
		return session.ErrInvalidSession
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.userHashKey(sess.UserKey), sess.SessionKey, data)
		pipe.SAdd(ctx, s.usersSetKey(), sess.UserKey)
		return nil
	})
	return err
}

// Delete removes one session. The user's registry entry stays until the
// sweep removes the whole user.
func (s *Store) Delete(ctx context.Context, userKey, sessionKey string) error {
	return s.client.HDel(ctx, s.userHashKey(userKey), sessionKey).Err()
}

// DeleteMany removes a set of the user's sessions
func (s *Store) DeleteMany(ctx context.Context, userKey string, sessionKeys []string) error {
	if len(sessionKeys) == 0 {
		return nil
	}
	return s.client.HDel(ctx, s.userHashKey(userKey), sessionKeys...).Err()
}

// DeleteUser removes the user's session hash and registry entry
func (s *Store) DeleteUser(ctx context.Context, userKey string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.userHashKey(userKey))
		pipe.SRem(ctx, s.usersSetKey(), userKey)
		return nil
	})
	return err
}

// UserSessions returns all sessions stored for the user key
func (s *Store) UserSessions(ctx context.Context, userKey string) ([]*session.Session, error) {
	values, err := s.client.HVals(ctx, s.userHashKey(userKey)).Result()
	if err != nil {
		return nil, err
	}

	out := make([]*session.Session, 0, len(values))
	for _, data := range values {
		var sess session.Session
		if err := json.Unmarshal([]byte(data), &sess); err != nil {
			return nil, err
		}
		out = append(out, &sess)
	}
	return out, nil
}

// UserKeys returns every user key in the registry
func (s *Store) UserKeys(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.usersSetKey()).Result()
}

// Clear removes every session hash and the user registry
func (s *Store) Clear(ctx context.Context) error {
	userKeys, err := s.UserKeys(ctx)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, userKey := range userKeys {
			pipe.Del(ctx, s.userHashKey(userKey))
		}
		pipe.Del(ctx, s.usersSetKey())
		return nil
	})
	return err
}
