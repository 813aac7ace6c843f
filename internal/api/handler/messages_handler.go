package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/48hauling/web-panel/internal/core/domain"
)

// MessagesHandler serves driver messaging: conversation threads, direct
// messages and broadcast announcements.
type MessagesHandler struct {
	Base
}

func NewMessagesHandler(base Base) *MessagesHandler {
	return &MessagesHandler{Base: base}
}

// List shows all conversation summaries alongside active announcements.
func (h *MessagesHandler) List(c echo.Context) error {
	return h.page(c, "")
}

// Conversation shows one thread and marks it read.
func (h *MessagesHandler) Conversation(c echo.Context) error {
	userID := c.Param("userId")
	ctx := c.Request().Context()
	client := h.client(c)

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	resp := client.GetConversation(ctx, userID, limit)
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	// Opening a thread counts as reading it. Best effort; the thread still
	// renders if the read marker fails.
	if ack := client.MarkConversationRead(ctx, userID); !ack.Success {
		h.Log.Warn().Str("user_id", userID).Str("error", ack.ErrorMessage()).
			Msg("mark conversation read failed")
	}

	return h.render(c, "conversation", "Conversation", "", map[string]any{
		"UserID":   userID,
		"Messages": resp.Data,
	})
}

type sendMessageForm struct {
	Content string `form:"content" validate:"required"`
	Type    string `form:"messageType"`
}

// Send posts a direct message into a thread.
func (h *MessagesHandler) Send(c echo.Context) error {
	userID := c.Param("userId")

	var form sendMessageForm
	if err := c.Bind(&form); err != nil {
		return h.page(c, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.page(c, err.Error())
	}
	if form.Type == "" {
		form.Type = "text"
	}

	client := h.client(c)
	resp := client.SendMessage(c.Request().Context(), userID, form.Content, form.Type)
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionSend, domain.AuditEntityMessage,
		userID, nil)
	return c.Redirect(http.StatusSeeOther, "/messages/conversation/"+url.PathEscape(userID))
}

type announcementForm struct {
	Title    string `form:"title"   validate:"required"`
	Content  string `form:"content" validate:"required"`
	Priority string `form:"priority" validate:"omitempty,oneof=LOW NORMAL HIGH URGENT"`
	Expires  string `form:"expiresAt"`
}

// CreateAnnouncement broadcasts a notice to all drivers.
func (h *MessagesHandler) CreateAnnouncement(c echo.Context) error {
	var form announcementForm
	if err := c.Bind(&form); err != nil {
		return h.page(c, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		return h.page(c, err.Error())
	}

	client := h.client(c)
	resp := client.CreateAnnouncement(c.Request().Context(), domain.CreateAnnouncementInput{
		Title:     form.Title,
		Content:   form.Content,
		Priority:  form.Priority,
		ExpiresAt: form.Expires,
	})
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionCreate, domain.AuditEntityMessage,
		strconv.FormatInt(resp.Data.ID, 10), map[string]any{"title": form.Title})
	return c.Redirect(http.StatusSeeOther, "/messages")
}

// DeleteAnnouncement removes a broadcast.
func (h *MessagesHandler) DeleteAnnouncement(c echo.Context) error {
	id := c.Param("id")

	client := h.client(c)
	resp := client.DeleteAnnouncement(c.Request().Context(), id)
	if !resp.Success {
		return h.page(c, resp.ErrorMessage())
	}

	h.Audit.Record(c, client, domain.AuditActionDelete, domain.AuditEntityMessage, id, nil)
	return c.Redirect(http.StatusSeeOther, "/messages")
}

func (h *MessagesHandler) page(c echo.Context, errMsg string) error {
	ctx := c.Request().Context()
	client := h.client(c)

	var conversations []domain.Conversation
	if resp := client.GetConversations(ctx); resp.Success {
		conversations = resp.Data
	} else if errMsg == "" {
		errMsg = resp.ErrorMessage()
	}

	var announcements []domain.Announcement
	if resp := client.GetAnnouncements(ctx, c.QueryParam("expired") == "true"); resp.Success {
		announcements = resp.Data
	}

	return h.render(c, "messages", "Messages", errMsg, map[string]any{
		"Conversations": conversations,
		"Announcements": announcements,
	})
}
