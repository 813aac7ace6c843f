package domain

import "time"

// Audit actions recorded by the panel. The backend accepts free-form strings;
// these constants keep the panel's own vocabulary consistent.
const (
	AuditActionCreate   = "create"
	AuditActionUpdate   = "update"
	AuditActionDelete   = "delete"
	AuditActionView     = "view"
	AuditActionDownload = "download"
	AuditActionLogin    = "login"
	AuditActionLogout   = "logout"
	AuditActionAssign   = "assign"
	AuditActionApprove  = "approve"
	AuditActionSend     = "send"
	AuditActionExport   = "export"
)

// Audit entity types.
const (
	AuditEntityLoad     = "load"
	AuditEntityDriver   = "driver"
	AuditEntityDvir     = "dvir"
	AuditEntityMessage  = "message"
	AuditEntityDocument = "document"
	AuditEntitySetting  = "setting"
	AuditEntitySystem   = "system"
)

// AuditLog is a recorded operator action.
type AuditLog struct {
	ID         int64          `json:"id"`
	UserID     string         `json:"userId,omitempty"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId,omitempty"`
	Changes    map[string]any `json:"changes,omitempty"`
	IPAddress  string         `json:"ipAddress,omitempty"`
	UserAgent  string         `json:"userAgent,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// AuditEntryInput is the payload for POST /hauling/audit.
type AuditEntryInput struct {
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId,omitempty"`
	Changes    map[string]any `json:"changes,omitempty"`
	IPAddress  string         `json:"ipAddress,omitempty"`
	UserAgent  string         `json:"userAgent,omitempty"`
}

// AuditQuery filters an audit-log listing.
type AuditQuery struct {
	Limit      int
	Action     string
	EntityType string
	UserID     string
	StartDate  string
	EndDate    string
}

// AuditStats summarises audit activity over a period.
type AuditStats struct {
	TotalLogs       int            `json:"totalLogs"`
	ActionBreakdown map[string]int `json:"actionBreakdown"`
	EntityBreakdown map[string]int `json:"entityBreakdown"`
	RecentActions   []AuditLog     `json:"recentActions"`
}
