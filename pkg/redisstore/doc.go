// Package redisstore provides a Redis-backed session.Store for multi-node
// deployments.
//
// Each user's sessions live in one Redis hash keyed by the user key, with
// the session key as the hash field and the JSON-encoded session as the
// value. A companion set tracks every known user key so the store can
// enumerate users without scanning the keyspace. Deleting an individual
// session leaves the user's set membership in place — that is the
// bookkeeping entry the lifecycle sweep prunes once every session of a user
// has expired.
//
//	<prefix>:users            SET  of user keys
//	<prefix>:<userKey>        HASH sessionKey -> JSON(session)
//
// # Usage
//
//	client, err := redisstore.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := redisstore.New(client)
//
//	manager, _ := session.New(codec, store)
package redisstore
