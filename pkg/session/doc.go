// Package session implements the token-session lifecycle: multi-device
// login with signed opaque tokens, verification with lazy expiry, forced
// eviction and traffic-driven sweeping of expired sessions — all against a
// pluggable storage contract.
//
// # Architecture
//
// A Manager ties three collaborators together: a TokenCodec that signs and
// decodes opaque token strings (see pkg/token), a Store that persists
// Session records under a composite (userKey, sessionKey) key, and the
// request context that propagates the authenticated session through one
// logical request.
//
//	login                verify
//	  │                    │
//	  ▼                    ▼
//	┌───────────────────────────┐
//	│          Manager          │──► context (WithSession / FromContext)
//	└───────────────────────────┘
//	  │ encode/decode   │ CRUD
//	  ▼                 ▼
//	TokenCodec        Store (memory, redis, mongo, …)
//
// A userKey identifies the logical subject ("<prefix>_<userType>_<id>") and
// groups every concurrent login of that subject; each login instance gets
// its own unique sessionKey and token. Two policies govern simultaneous
// logins: disabling ConcurrentLogin keeps a single active session per user,
// and DeviceReject makes logins of the same device type mutually exclusive
// while letting different device types coexist.
//
// Expiry is lazy. A session whose idle time has passed its timeout stays in
// the store until a verify or a sweep notices and deletes it; sweeping is
// piggybacked on login and enumeration traffic rather than a timer, though
// nothing stops a deployment from calling Sweep periodically as well.
//
// # Usage
//
//	s, _ := signer.New(privKey, pubKey)
//	codec, _ := token.New(s)
//	manager, _ := session.New(codec, session.NewMemoryStore())
//
//	// Login issues the client-held token
//	sess, err := manager.Login(ctx, "42",
//	    session.WithUserType("admin"),
//	    session.WithDeviceType("mobile"),
//	)
//	// hand sess.Token to the client
//
//	// Per-request verification
//	if sess, ok := manager.Verify(ctx, clientToken); ok {
//	    ctx = session.WithSession(ctx, sess)
//	}
//
// HTTP services can mount the bundled adapter instead of calling Verify by
// hand:
//
//	mux := http.NewServeMux()
//	handler := manager.Middleware()(mux)
//
// # Error handling
//
// Verify never returns an error: tampered tokens, unknown sessions, expiry
// and store failures all collapse into a false result so the caller leaks
// nothing about why authentication failed. Every other operation surfaces
// store errors to its caller; Logout without a propagated session returns
// ErrNotAuthenticated.
package session
