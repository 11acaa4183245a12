package session

import "time"

// Session is the server-side record of one authenticated login instance.
// Many sessions may share a UserKey (one per device/login); the SessionKey
// is unique per login across the whole store.
type Session struct {
	ID           string        `json:"id" bson:"id"`
	UserType     string        `json:"user_type" bson:"user_type"`
	UserKey      string        `json:"user_key" bson:"user_key"`
	SessionKey   string        `json:"session_key" bson:"session_key"`
	Token        string        `json:"token" bson:"token"`
	Timeout      time.Duration `json:"timeout" bson:"timeout"`
	LoginAt      time.Time     `json:"login_at" bson:"login_at"`
	LastAccessAt time.Time     `json:"last_access_at" bson:"last_access_at"`
	DeviceType   string        `json:"device_type,omitempty" bson:"device_type,omitempty"`
	DeviceName   string        `json:"device_name,omitempty" bson:"device_name,omitempty"`
}

// ExpiredAt reports whether the session is logically expired at the given
// instant. Expiry is lazy: an expired session may still be physically
// present in the store until a verify or sweep removes it.
func (s *Session) ExpiredAt(now time.Time) bool {
	return s != nil && now.Sub(s.LastAccessAt) >= s.Timeout
}

// Expired reports whether the session is logically expired now.
func (s *Session) Expired() bool {
	return s.ExpiredAt(time.Now())
}
