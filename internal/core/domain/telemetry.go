package domain

import "time"

// LocationPoint is a single GPS fix reported by a driver device.
type LocationPoint struct {
	ID         int64     `json:"id"`
	DriverID   string    `json:"driverId"`
	JobID      int64     `json:"jobId,omitempty"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy,omitempty"`
	Speed      float64   `json:"speed,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LocationQuery filters a location-history request.
type LocationQuery struct {
	JobID     string
	StartTime string
	EndTime   string
	Limit     int
}

// HeartbeatInput is the payload for POST /hauling/heartbeat.
type HeartbeatInput struct {
	AppType    string         `json:"appType,omitempty"`
	AppVersion string         `json:"appVersion,omitempty"`
	DeviceInfo map[string]any `json:"deviceInfo,omitempty"`
}

// AnalyticsEvent is a raw tracked event.
type AnalyticsEvent struct {
	ID         int64          `json:"id"`
	UserID     string         `json:"userId,omitempty"`
	EventName  string         `json:"eventName"`
	EventData  map[string]any `json:"eventData,omitempty"`
	AppVersion string         `json:"appVersion,omitempty"`
	Platform   string         `json:"platform,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// TrackEventInput is the payload for POST /hauling/analytics.
type TrackEventInput struct {
	EventName  string         `json:"eventName"`
	EventData  map[string]any `json:"eventData,omitempty"`
	AppVersion string         `json:"appVersion,omitempty"`
	Platform   string         `json:"platform,omitempty"`
}

// DashboardStats is the overview widget payload, computed by the backend.
type DashboardStats struct {
	TotalJobs      int     `json:"totalJobs"`
	ActiveJobs     int     `json:"activeJobs"`
	CompletedJobs  int     `json:"completedJobs"`
	TotalDrivers   int     `json:"totalDrivers"`
	OnlineDrivers  int     `json:"onlineDrivers"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AvgJobDuration float64 `json:"avgJobDuration"`
	CompletionRate float64 `json:"completionRate"`
}

// RevenuePoint is one bucket of the revenue time series.
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Jobs    int     `json:"jobs"`
}

// RevenueAnalytics aggregates revenue over a period.
type RevenueAnalytics struct {
	Period          string         `json:"period"`
	TotalRevenue    float64        `json:"totalRevenue"`
	JobCount        int            `json:"jobCount"`
	AvgRevenuePerJob float64       `json:"avgRevenuePerJob"`
	TimeSeriesData  []RevenuePoint `json:"timeSeriesData"`
}

// DriverAnalytics aggregates per-driver performance over a period.
type DriverAnalytics struct {
	DriverID       string  `json:"driverId"`
	DriverName     string  `json:"driverName"`
	TotalJobs      int     `json:"totalJobs"`
	CompletedJobs  int     `json:"completedJobs"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AvgJobDuration float64 `json:"avgJobDuration"`
	CompletionRate float64 `json:"completionRate"`
}

// JobsTimelinePoint is one day of the jobs-by-status timeline.
type JobsTimelinePoint struct {
	Date       string `json:"date"`
	Pending    int    `json:"pending"`
	Assigned   int    `json:"assigned"`
	InProgress int    `json:"in_progress"`
	Completed  int    `json:"completed"`
	Cancelled  int    `json:"cancelled"`
}
