package domain

import "time"

// HaulingProfile is the driver-app profile attached to a driver account.
type HaulingProfile struct {
	UserID               string    `json:"userId"`
	PushToken            string    `json:"pushToken,omitempty"`
	PushPlatform         string    `json:"pushPlatform,omitempty"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	DriverLicenseNumber  string    `json:"driverLicenseNumber,omitempty"`
	VehicleAssigned      string    `json:"vehicleAssigned,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// DeviceStatus is a heartbeat record for a driver device.
type DeviceStatus struct {
	UserID     string         `json:"userId"`
	AppType    string         `json:"appType"`
	LastSeen   time.Time      `json:"lastSeen"`
	AppVersion string         `json:"appVersion,omitempty"`
	DeviceInfo map[string]any `json:"deviceInfo,omitempty"`
	IsOnline   bool           `json:"isOnline,omitempty"`
}

// DriverStats summarises a driver's job counts.
type DriverStats struct {
	TotalJobs     int `json:"totalJobs"`
	CompletedJobs int `json:"completedJobs"`
	ActiveJobs    int `json:"activeJobs"`
}

// Driver is a user account enriched with hauling profile, device status and
// aggregate stats.
type Driver struct {
	User
	Profile      *HaulingProfile `json:"profile,omitempty"`
	DeviceStatus *DeviceStatus   `json:"deviceStatus,omitempty"`
	Stats        *DriverStats    `json:"stats,omitempty"`
}

// CreateDriverInput carries the fields needed to provision a driver account.
type CreateDriverInput struct {
	Email               string `json:"email"`
	Username            string `json:"username"`
	Password            string `json:"password"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	DriverLicenseNumber string `json:"driverLicenseNumber,omitempty"`
	VehicleAssigned     string `json:"vehicleAssigned,omitempty"`
}

// UpdateDriverInput carries a partial driver update; empty fields are omitted.
type UpdateDriverInput struct {
	Email               string `json:"email,omitempty"`
	Username            string `json:"username,omitempty"`
	FirstName           string `json:"firstName,omitempty"`
	LastName            string `json:"lastName,omitempty"`
	DriverLicenseNumber string `json:"driverLicenseNumber,omitempty"`
	VehicleAssigned     string `json:"vehicleAssigned,omitempty"`
}
