package domain

// Ack is the minimal payload returned by fire-and-forget endpoints.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Count is the payload of counting endpoints such as the unread-message total.
type Count struct {
	Count int `json:"count"`
}
