package domain

// Settings is the free-form application settings document.
type Settings map[string]any

// UserPreferences holds per-user display and notification preferences.
type UserPreferences struct {
	Theme                string `json:"theme,omitempty"`
	Language             string `json:"language,omitempty"`
	NotificationsEnabled *bool  `json:"notificationsEnabled,omitempty"`
	EmailNotifications   *bool  `json:"emailNotifications,omitempty"`
}
