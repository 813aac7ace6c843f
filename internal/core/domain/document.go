package domain

import "time"

// JobAttachment is a document (BOL, photo, signature) attached to a load.
type JobAttachment struct {
	ID             int64     `json:"id"`
	JobID          int64     `json:"jobId"`
	UploadedBy     string    `json:"uploadedBy"`
	FileName       string    `json:"fileName"`
	FileURL        string    `json:"fileUrl"`
	FileType       string    `json:"fileType,omitempty"`
	AttachmentType string    `json:"attachmentType,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
