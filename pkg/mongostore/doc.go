// Package mongostore provides a MongoDB-backed session.Store.
//
// Every login instance is one document in a single collection, addressed by
// a unique compound index on (user_key, session_key). User enumeration uses
// a distinct query on user_key, so unlike hash-based stores there is no
// separate user bookkeeping entry to leak: a user disappears from UserKeys
// the moment their last document is removed, and the sweep's user cleanup
// call is a harmless no-op.
//
// # Usage
//
//	db, err := mongostore.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store, err := mongostore.New(ctx, db)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	manager, _ := session.New(codec, store)
package mongostore
