package domain

import "time"

// Message is a direct message between an operator and a driver.
type Message struct {
	ID          int64      `json:"id"`
	SenderID    string     `json:"senderId"`
	RecipientID string     `json:"recipientId"`
	Content     string     `json:"content"`
	MessageType string     `json:"messageType"`
	IsRead      bool       `json:"isRead"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	Sender      *User      `json:"sender,omitempty"`
	Recipient   *User      `json:"recipient,omitempty"`
}

// Conversation is a per-user thread summary.
type Conversation struct {
	UserID        string    `json:"userId"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	LastMessage   string    `json:"lastMessage"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	UnreadCount   int       `json:"unreadCount"`
}

// Announcement priorities.
const (
	AnnouncementLow    = "LOW"
	AnnouncementNormal = "NORMAL"
	AnnouncementHigh   = "HIGH"
	AnnouncementUrgent = "URGENT"
)

// Announcement is a broadcast notice shown to all drivers.
type Announcement struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Priority  string     `json:"priority"`
	IsActive  bool       `json:"isActive"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CreateAnnouncementInput is the payload for a new announcement.
type CreateAnnouncementInput struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Priority  string `json:"priority,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// UpdateAnnouncementInput carries a partial announcement edit.
type UpdateAnnouncementInput struct {
	Title     string `json:"title,omitempty"`
	Content   string `json:"content,omitempty"`
	Priority  string `json:"priority,omitempty"`
	IsActive  *bool  `json:"isActive,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// Notification is a push/in-app notification record.
type Notification struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	ReadAt    *time.Time     `json:"readAt,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// SendNotificationInput is the payload for POST /hauling/notifications/send.
type SendNotificationInput struct {
	UserID string         `json:"userId"`
	Type   string         `json:"type"`
	Title  string         `json:"title"`
	Body   string         `json:"body"`
	Data   map[string]any `json:"data,omitempty"`
}
