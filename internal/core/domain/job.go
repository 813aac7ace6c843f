package domain

import "time"

// Job statuses as emitted by the backend.
const (
	JobStatusPending    = "pending"
	JobStatusAssigned   = "assigned"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Job is a hauling load. Owned and mutated exclusively by the backend; the
// panel displays it and re-submits edits.
type Job struct {
	ID                  int64      `json:"id"`
	Reference           string     `json:"reference,omitempty"`
	PickupAddress       string     `json:"pickupAddress"`
	PickupLat           float64    `json:"pickupLat,omitempty"`
	PickupLng           float64    `json:"pickupLng,omitempty"`
	DeliveryAddress     string     `json:"deliveryAddress"`
	DeliveryLat         float64    `json:"deliveryLat,omitempty"`
	DeliveryLng         float64    `json:"deliveryLng,omitempty"`
	Status              string     `json:"status"`
	DriverID            string     `json:"driverId,omitempty"`
	AssignedTo          string     `json:"assignedTo,omitempty"`
	AssignedDriverID    string     `json:"assignedDriverId,omitempty"`
	AssignedAt          *time.Time `json:"assignedAt,omitempty"`
	StartedAt           *time.Time `json:"startedAt,omitempty"`
	CompletedAt         *time.Time `json:"completedAt,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	CustomerName        string     `json:"customerName,omitempty"`
	CustomerPhone       string     `json:"customerPhone,omitempty"`
	Priority            int        `json:"priority"`
	EstimatedDurationMinutes int   `json:"estimatedDurationMinutes,omitempty"`
	Price               string     `json:"price,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// CreateJobInput carries the operator-supplied fields of a new load.
type CreateJobInput struct {
	Reference       string `json:"reference,omitempty"`
	PickupAddress   string `json:"pickupAddress"`
	DeliveryAddress string `json:"deliveryAddress"`
	CustomerName    string `json:"customerName,omitempty"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Priority        int    `json:"priority,omitempty"`
	AssignedDriverID string `json:"assignedDriverId,omitempty"`
}
