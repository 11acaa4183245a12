package session

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the lifecycle policy knobs consumed by the Manager.
type Config struct {
	// KeyPrefix namespaces every derived user key: "<prefix>_<userType>_<id>"
	KeyPrefix string `env:"AUTHTOKEN_KEY_PREFIX" envDefault:"auth_token"`

	// DefaultUserType is used when a login does not specify one
	DefaultUserType string `env:"AUTHTOKEN_DEFAULT_USER_TYPE" envDefault:"default"`

	// DefaultTimeout is the max idle duration before a session expires
	DefaultTimeout time.Duration `env:"AUTHTOKEN_DEFAULT_TIMEOUT" envDefault:"2h"`

	// ConcurrentLogin allows multiple simultaneous sessions per user.
	// When false, a login evicts every other session of that user.
	ConcurrentLogin bool `env:"AUTHTOKEN_CONCURRENT_LOGIN" envDefault:"true"`

	// DeviceReject makes sessions of the same device type mutually
	// exclusive: a new login evicts earlier logins with the same
	// DeviceType while leaving other device types alone.
	DeviceReject bool `env:"AUTHTOKEN_DEVICE_REJECT" envDefault:"false"`

	// RefreshOnAccess resets the idle clock on every successful verify
	RefreshOnAccess bool `env:"AUTHTOKEN_REFRESH_ON_ACCESS" envDefault:"true"`

	// DefaultDeviceType is used when a login does not supply device metadata
	DefaultDeviceType string `env:"AUTHTOKEN_DEFAULT_DEVICE_TYPE" envDefault:"unknown"`

	// TokenName is the header / query parameter / cookie name the HTTP
	// token sources read the client token from
	TokenName string `env:"AUTHTOKEN_TOKEN_NAME" envDefault:"auth_token"`
}

// DefaultConfig returns the default lifecycle configuration
func DefaultConfig() Config {
	return Config{
		KeyPrefix:         "auth_token",
		DefaultUserType:   "default",
		DefaultTimeout:    2 * time.Hour,
		ConcurrentLogin:   true,
		DeviceReject:      false,
		RefreshOnAccess:   true,
		DefaultDeviceType: "unknown",
		TokenName:         "auth_token",
	}
}

// LoadConfig populates a Config from environment variables, loading a .env
// file first when one exists.
func LoadConfig() (Config, error) {
	// The .env file is optional
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrConfigParse, err)
	}

	return cfg, nil
}
