package dto

// Settings is the API view of the settings table. The upstream API key is
// never echoed back; only its presence is reported.
type Settings struct {
	ClubTag                  string `json:"club_tag"`
	APIKeyConfigured         bool   `json:"api_key_configured"`
	WebhookURL               string `json:"webhook_url"`
	NotificationsEnabled     bool   `json:"notifications_enabled"`
	InactivityThresholdHours int    `json:"inactivity_threshold_hours"`
	RequiredTrophies         int    `json:"required_trophies"`
	LastSyncedAt             string `json:"last_synced_at,omitempty"`
	LastInactiveAlertAt      string `json:"last_inactive_alert_at,omitempty"`
}

// SettingsUpdate carries a partial settings write. Nil fields are untouched.
type SettingsUpdate struct {
	ClubTag                  *string `json:"club_tag,omitempty"`
	APIKey                   *string `json:"api_key,omitempty"`
	WebhookURL               *string `json:"webhook_url,omitempty"`
	NotificationsEnabled     *bool   `json:"notifications_enabled,omitempty"`
	InactivityThresholdHours *int    `json:"inactivity_threshold_hours,omitempty"`
}

// SyncTriggerResult reports the workflow started by a manual sync request.
type SyncTriggerResult struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}
