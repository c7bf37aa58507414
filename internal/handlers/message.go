package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"chatroom-service/internal/models"
	"chatroom-service/internal/observability"
	"chatroom-service/internal/repositories"
	"chatroom-service/internal/telemetry"
)

// MessageHandler manages the room message endpoints.
type MessageHandler struct {
	rooms repositories.RoomRepository
	audit *telemetry.AuditEmitter
}

// NewMessageHandler builds a MessageHandler.
func NewMessageHandler(rooms repositories.RoomRepository, audit *telemetry.AuditEmitter) *MessageHandler {
	return &MessageHandler{rooms: rooms, audit: audit}
}

// GetMessages handles POST /message/get. The body is a bare JSON integer
// room id. A room that does not exist, or whose message list was never
// initialized, is a broken invariant and the only case this service reports
// with a non-200 status.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	var roomID int64
	if err := c.ShouldBindJSON(&roomID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msgs, err := h.rooms.Messages(c.Request.Context(), roomID)
	switch {
	case errors.Is(err, repositories.ErrRoomNotFound), errors.Is(err, repositories.ErrMessagesUnset):
		logrus.WithError(err).WithField("room_id", roomID).Error("room message state missing")
		observability.IncSQLStatement("message_get", "invariant")
		emitAudit(c, h.audit, "ERROR", "room message state missing")
		c.JSON(http.StatusInternalServerError, models.EmptyResult[[]string]("room message state missing"))
	case err != nil:
		logrus.WithError(err).WithField("room_id", roomID).Error("fetch messages failed")
		observability.IncSQLStatement("message_get", "error")
		c.JSON(http.StatusOK, models.EmptyResult[[]string]("message fetch failed"))
	default:
		observability.IncSQLStatement("message_get", "ok")
		c.JSON(http.StatusOK, models.NewResult("messages fetched", msgs))
	}
}

// SendMessage handles POST /message/send. Appending is gated on the room id
// alone; no room credentials are required, unlike entering.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req struct {
		Text   string `json:"text"`
		RoomID int64  `json:"room_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affected, err := h.rooms.AppendMessage(c.Request.Context(), req.RoomID, req.Text)
	if err != nil {
		logrus.WithError(err).WithField("room_id", req.RoomID).Error("send message failed")
		observability.IncSQLStatement("message_send", "error")
		c.JSON(http.StatusOK, models.EmptyResult[bool]("message send failed"))
		return
	}
	if affected == 0 {
		observability.IncSQLStatement("message_send", "no_match")
		c.JSON(http.StatusOK, models.NewResult("room not found", false))
		return
	}

	observability.IncSQLStatement("message_send", "ok")
	emitAudit(c, h.audit, "INFO", "message sent")
	c.JSON(http.StatusOK, models.NewResult("message sent", true))
}
