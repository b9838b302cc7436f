package config

import "sync"

// Settings is the process-wide runtime configuration. Unlike Config, which is
// read once from the environment, Settings values can be replaced while the
// server is running (the admin credential pair is overridable from the
// datastore). All access goes through the mutex; never expose the fields.
type Settings struct {
	mu        sync.RWMutex
	adminKey  string
	adminPass string
}

// NewSettings seeds the runtime settings from the environment-derived config.
func NewSettings(cfg *Config) *Settings {
	return &Settings{
		adminKey:  cfg.Admin.Key,
		adminPass: cfg.Admin.Pass,
	}
}

// AdminCredentials returns the current admin key and passphrase.
func (s *Settings) AdminCredentials() (string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminKey, s.adminPass
}

// SetAdminCredentials swaps in a new credential pair. Empty values are
// ignored so a partial override cannot lock administrators out.
func (s *Settings) SetAdminCredentials(key, pass string) {
	if key == "" || pass == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminKey = key
	s.adminPass = pass
}
