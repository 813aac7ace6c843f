package devapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// SendMessage sends a direct message to a user.
func (c *Client) SendMessage(ctx context.Context, recipientID, content, messageType string) Response[domain.Message] {
	return request[domain.Message](ctx, c, http.MethodPost, "/hauling/messages", map[string]string{
		"recipientId": recipientID,
		"content":     content,
		"messageType": messageType,
	})
}

// GetConversation fetches the message thread with a user, newest last.
func (c *Client) GetConversation(ctx context.Context, userID string, limit int) Response[[]domain.Message] {
	if limit <= 0 {
		limit = 50
	}
	return request[[]domain.Message](ctx, c, http.MethodGet,
		"/hauling/messages/conversation/"+userID+"?limit="+strconv.Itoa(limit), nil)
}

// GetConversations lists all conversation summaries.
func (c *Client) GetConversations(ctx context.Context) Response[[]domain.Conversation] {
	return request[[]domain.Conversation](ctx, c, http.MethodGet, "/hauling/messages/conversations", nil)
}

// MarkMessageRead marks a single message as read.
func (c *Client) MarkMessageRead(ctx context.Context, messageID string) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodPut, "/hauling/messages/"+messageID+"/read", nil)
}

// MarkConversationRead marks a whole thread as read.
func (c *Client) MarkConversationRead(ctx context.Context, userID string) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodPut, "/hauling/messages/conversation/"+userID+"/read", nil)
}

// GetUnreadMessageCount returns the operator's unread total.
func (c *Client) GetUnreadMessageCount(ctx context.Context) Response[domain.Count] {
	return request[domain.Count](ctx, c, http.MethodGet, "/hauling/messages/unread", nil)
}

// DeleteMessage removes a message.
func (c *Client) DeleteMessage(ctx context.Context, messageID string) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodDelete, "/hauling/messages/"+messageID, nil)
}

// CreateAnnouncement broadcasts a notice to all drivers.
func (c *Client) CreateAnnouncement(ctx context.Context, in domain.CreateAnnouncementInput) Response[domain.Announcement] {
	return request[domain.Announcement](ctx, c, http.MethodPost, "/hauling/messages/announcements", in)
}

// GetAnnouncements lists announcements, optionally including expired ones.
func (c *Client) GetAnnouncements(ctx context.Context, includeExpired bool) Response[[]domain.Announcement] {
	return request[[]domain.Announcement](ctx, c, http.MethodGet,
		"/hauling/messages/announcements?includeExpired="+strconv.FormatBool(includeExpired), nil)
}

// UpdateAnnouncement edits an announcement.
func (c *Client) UpdateAnnouncement(ctx context.Context, id string, in domain.UpdateAnnouncementInput) Response[domain.Announcement] {
	return request[domain.Announcement](ctx, c, http.MethodPut, "/hauling/messages/announcements/"+id, in)
}

// DeleteAnnouncement removes an announcement.
func (c *Client) DeleteAnnouncement(ctx context.Context, id string) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodDelete, "/hauling/messages/announcements/"+id, nil)
}

// GetNotifications lists the operator's notifications.
func (c *Client) GetNotifications(ctx context.Context, unreadOnly bool) Response[[]domain.Notification] {
	endpoint := "/hauling/notifications"
	if unreadOnly {
		endpoint += "?unreadOnly=true"
	}
	return request[[]domain.Notification](ctx, c, http.MethodGet, endpoint, nil)
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodPut, "/hauling/notifications/"+notificationID+"/read", nil)
}

// MarkAllNotificationsRead marks every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodPut, "/hauling/notifications/mark-all-read", nil)
}

// SendNotification pushes a notification to a user.
func (c *Client) SendNotification(ctx context.Context, in domain.SendNotificationInput) Response[domain.Ack] {
	return request[domain.Ack](ctx, c, http.MethodPost, "/hauling/notifications/send", in)
}
