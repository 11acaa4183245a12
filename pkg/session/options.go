package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithConfig replaces the default lifecycle configuration
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.config = cfg
	}
}

// WithLogger sets the logger used for sweep and verify-path diagnostics
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// loginParams are per-login values resolved from options with Config defaults
type loginParams struct {
	timeout    time.Duration
	userType   string
	deviceType string
	deviceName string
	loginTime  time.Time
}

// LoginOption overrides one login parameter for a single Login call
type LoginOption func(*loginParams)

// WithTimeout overrides the idle timeout for this login
func WithTimeout(d time.Duration) LoginOption {
	return func(p *loginParams) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithUserType sets the logical subject partition for this login
func WithUserType(userType string) LoginOption {
	return func(p *loginParams) {
		if userType != "" {
			p.userType = userType
		}
	}
}

// WithDeviceType sets the client-supplied device category
func WithDeviceType(deviceType string) LoginOption {
	return func(p *loginParams) {
		if deviceType != "" {
			p.deviceType = deviceType
		}
	}
}

// WithDeviceName sets the client-supplied device label
func WithDeviceName(deviceName string) LoginOption {
	return func(p *loginParams) {
		p.deviceName = deviceName
	}
}

// WithLoginTime overrides the recorded login instant
func WithLoginTime(t time.Time) LoginOption {
	return func(p *loginParams) {
		if !t.IsZero() {
			p.loginTime = t
		}
	}
}
