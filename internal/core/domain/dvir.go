package domain

import "time"

// DVIR inspection types and statuses.
const (
	InspectionPreTrip  = "PRE_TRIP"
	InspectionPostTrip = "POST_TRIP"

	DvirStatusPending   = "pending"
	DvirStatusCompleted = "COMPLETED"
)

// Dvir is a Driver Vehicle Inspection Report submitted from the driver app.
type Dvir struct {
	ID                int64           `json:"id"`
	DriverID          string          `json:"driverId"`
	VehicleID         string          `json:"vehicleId,omitempty"`
	InspectionType    string          `json:"inspectionType"`
	Odometer          int64           `json:"odometer,omitempty"`
	ChecklistItems    map[string]bool `json:"checklistItems"`
	DefectsFound      bool            `json:"defectsFound"`
	DefectDescription string          `json:"defectDescription,omitempty"`
	SafeToOperate     bool            `json:"safeToOperate"`
	DriverSignature   string          `json:"driverSignature,omitempty"`
	MechanicNotes     string          `json:"mechanicNotes,omitempty"`
	Status            string          `json:"status"`
	Photos            []string        `json:"photos,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// CreateDvirInput is the submission payload for a new inspection report.
type CreateDvirInput struct {
	VehicleID         string          `json:"vehicleId,omitempty"`
	InspectionType    string          `json:"inspectionType"`
	Odometer          int64           `json:"odometer,omitempty"`
	ChecklistItems    map[string]bool `json:"checklistItems"`
	DefectsFound      bool            `json:"defectsFound"`
	DefectDescription string          `json:"defectDescription,omitempty"`
	SafeToOperate     bool            `json:"safeToOperate"`
	DriverSignature   string          `json:"driverSignature,omitempty"`
}

// UpdateDvirInput carries the mechanic's review of a pending report.
type UpdateDvirInput struct {
	MechanicNotes string `json:"mechanicNotes,omitempty"`
	Status        string `json:"status,omitempty"`
}

// DvirQuery filters a per-driver DVIR listing.
type DvirQuery struct {
	StartDate string
	EndDate   string
	Limit     int
}
