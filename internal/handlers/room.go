package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"chatroom-service/internal/models"
	"chatroom-service/internal/observability"
	"chatroom-service/internal/repositories"
	"chatroom-service/internal/telemetry"
)

// roomRequest is the shared body shape for /room/create and /room/enter.
// Creation only reads RoomName and Password; the other fields are carried for
// wire compatibility.
type roomRequest struct {
	RoomID   int64  `json:"room_id"`
	RoomName string `json:"room_name"`
	Password string `json:"password"`
	UserID   int64  `json:"user_id"`
}

// RoomHandler manages the chat room endpoints.
type RoomHandler struct {
	rooms repositories.RoomRepository
	audit *telemetry.AuditEmitter
}

// NewRoomHandler builds a RoomHandler.
func NewRoomHandler(rooms repositories.RoomRepository, audit *telemetry.AuditEmitter) *RoomHandler {
	return &RoomHandler{rooms: rooms, audit: audit}
}

// CreateRoom handles POST /room/create. The database assigns the room id;
// room_id and user_id from the request are ignored.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.rooms.Create(c.Request.Context(), req.RoomName, req.Password)
	if err != nil {
		logrus.WithError(err).WithField("room_name", req.RoomName).Error("create room failed")
		observability.IncSQLStatement("create_room", "error")
		c.JSON(http.StatusOK, models.NewResult("room creation failed", false))
		return
	}

	logrus.WithFields(logrus.Fields{"room_id": room.ID, "room_name": room.Name}).Info("room created")
	observability.IncSQLStatement("create_room", "ok")
	emitAudit(c, h.audit, "INFO", "room created")
	c.JSON(http.StatusOK, models.NewResult("room created", true))
}

// EnterRoom handles POST /room/enter. The append is gated on room id, name
// and password all matching; a no-match is reported as such rather than as
// success, so joining a nonexistent room no longer looks successful.
func (h *RoomHandler) EnterRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affected, err := h.rooms.Enter(c.Request.Context(), req.RoomID, req.RoomName, req.Password, req.UserID)
	if err != nil {
		logrus.WithError(err).WithField("room_id", req.RoomID).Error("enter room failed")
		observability.IncSQLStatement("enter_room", "error")
		c.JSON(http.StatusOK, models.EmptyResult[bool]("room entry failed"))
		return
	}
	if affected == 0 {
		observability.IncSQLStatement("enter_room", "no_match")
		c.JSON(http.StatusOK, models.NewResult("room credentials did not match", false))
		return
	}

	logrus.WithFields(logrus.Fields{"room_id": req.RoomID, "user_id": req.UserID}).Info("user entered room")
	observability.IncSQLStatement("enter_room", "ok")
	emitAudit(c, h.audit, "INFO", "user entered room")
	c.JSON(http.StatusOK, models.NewResult("entered room", true))
}
