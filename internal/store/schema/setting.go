package schema

import "time"

// Setting keys. The settings table is flat string key-value storage for
// credentials, thresholds and sync bookkeeping; it is loaded lazily each run.
const (
	SettingClubTag              = "club_tag"
	SettingAPIKey               = "api_key"
	SettingWebhookURL           = "webhook_url"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingInactivityThreshold  = "inactivity_threshold_hours"
	SettingLastSyncedAt         = "last_synced_at"
	SettingLastInactiveAlertAt  = "last_inactive_alert_at"
	SettingRequiredTrophies     = "required_trophies"
)

// Setting stores one configuration key-value pair
type Setting struct {
	Key       string    `gorm:"primaryKey;type:text"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Setting) TableName() string {
	return "settings"
}
