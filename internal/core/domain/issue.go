package domain

import "time"

// ErrorLog is a client-reported application error.
type ErrorLog struct {
	ID           int64          `json:"id"`
	UserID       string         `json:"userId,omitempty"`
	ErrorMessage string         `json:"errorMessage"`
	StackTrace   string         `json:"stackTrace,omitempty"`
	AppVersion   string         `json:"appVersion,omitempty"`
	DeviceInfo   map[string]any `json:"deviceInfo,omitempty"`
	Severity     string         `json:"severity"`
	Resolved     bool           `json:"resolved"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// ErrorLogQuery filters an error-log listing.
type ErrorLogQuery struct {
	Limit    int
	Severity string
	Resolved *bool
}

// ReportedIssue is a user-filed issue ticket.
type ReportedIssue struct {
	ID          int64      `json:"id"`
	ReporterID  string     `json:"reporterId,omitempty"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	AdminNotes  string     `json:"adminNotes,omitempty"`
	AssignedTo  string     `json:"assignedTo,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	ReportedAt  time.Time  `json:"reportedAt"`
}

// IssueQuery filters an issue listing.
type IssueQuery struct {
	Status   string
	Category string
	Priority string
}

// UpdateIssueInput carries an admin's triage of an issue.
type UpdateIssueInput struct {
	Status     string `json:"status,omitempty"`
	AdminNotes string `json:"adminNotes,omitempty"`
	AssignedTo string `json:"assignedTo,omitempty"`
}
