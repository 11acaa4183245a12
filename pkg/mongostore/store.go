package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/authtoken/pkg/session"
)

const defaultCollection = "sessions"

// Store implements session.Store on top of a MongoDB collection.
type Store struct {
	collection *mongo.Collection
}

var _ session.Store = (*Store)(nil)

// StoreOption is a functional option for configuring the Store
type StoreOption func(*cfg)

type cfg struct {
	collection string
}

// WithCollection changes the collection name sessions are stored in
func WithCollection(name string) StoreOption {
	return func(c *cfg) {
		if name != "" {
			c.collection = name
		}
	}
}

// New creates a MongoDB-backed session store and ensures its indexes.
func New(ctx context.Context, db *mongo.Database, opts ...StoreOption) (*Store, error) {
	c := cfg{collection: defaultCollection}
	for _, opt := range opts {
		opt(&c)
	}

	s := &Store{collection: db.Collection(c.collection)}

	_, err := s.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_key", Value: 1},
				{Key: "session_key", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_key", Value: 1}},
		},
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Get retrieves the session stored under (userKey, sessionKey)
func (s *Store) Get(ctx context.Context, userKey, sessionKey string) (*session.Session, error) {
	filter := bson.M{"user_key": userKey, "session_key": sessionKey}

	var sess session.Session
	if err := s.collection.FindOne(ctx, filter).Decode(&sess); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, session.ErrSessionNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// Put upserts the session document
func (s *Store) Put(ctx context.Context, sess *session.Session) error {
	if sess == nil || sess.UserKey == "" || sess.SessionKey == "" {
		return session.ErrInvalidSession
	}

	filter := bson.M{"user_key": sess.UserKey, "session_key": sess.SessionKey}
	_, err := s.collection.ReplaceOne(ctx, filter, sess, options.Replace().SetUpsert(true))
	return err
}

// Delete removes one session document. Removing an absent one is a no-op.
func (s *Store) Delete(ctx context.Context, userKey, sessionKey string) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"user_key": userKey, "session_key": sessionKey})
	return err
}

// DeleteMany removes a set of the user's sessions
func (s *Store) DeleteMany(ctx context.Context, userKey string, sessionKeys []string) error {
	if len(sessionKeys) == 0 {
		return nil
	}

	filter := bson.M{"user_key": userKey, "session_key": bson.M{"$in": sessionKeys}}
	_, err := s.collection.DeleteMany(ctx, filter)
	return err
}

// DeleteUser removes every session document of the user key
func (s *Store) DeleteUser(ctx context.Context, userKey string) error {
	_, err := s.collection.DeleteMany(ctx, bson.M{"user_key": userKey})
	return err
}

// UserSessions returns all sessions stored for the user key
func (s *Store) UserSessions(ctx context.Context, userKey string) ([]*session.Session, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"user_key": userKey})
	if err != nil {
		return nil, err
	}

	var out []*session.Session
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserKeys returns every distinct user key in the collection
func (s *Store) UserKeys(ctx context.Context) ([]string, error) {
	var userKeys []string
	if err := s.collection.Distinct(ctx, "user_key", bson.D{}).Decode(&userKeys); err != nil {
		return nil, err
	}
	return userKeys, nil
}

// Clear wipes the collection
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.collection.DeleteMany(ctx, bson.D{})
	return err
}
