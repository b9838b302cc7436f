package entity

import "time"

// AdminSetting is a key/value runtime override row. The credential pair used
// by the chat admin probe lives here when operators rotate it away from the
// environment defaults.
type AdminSetting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

const (
	SettingAdminKey  = "admin_key"
	SettingAdminPass = "admin_pass"
)
