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

// UserHandler manages the user account endpoints.
type UserHandler struct {
	users repositories.UserRepository
	audit *telemetry.AuditEmitter
}

// NewUserHandler builds a UserHandler.
func NewUserHandler(users repositories.UserRepository, audit *telemetry.AuditEmitter) *UserHandler {
	return &UserHandler{users: users, audit: audit}
}

// AddUser handles POST /user/add. Every logical outcome is an HTTP 200
// envelope; a failed insert yields an empty message and a null payload, and
// the underlying error only goes to the log.
func (h *UserHandler) AddUser(c *gin.Context) {
	var req struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affected, err := h.users.Add(c.Request.Context(), models.User{ID: req.ID, Name: req.Name, Password: req.Password})
	if err != nil {
		logrus.WithError(err).WithField("user_id", req.ID).Error("add user failed")
		observability.IncSQLStatement("add_user", "error")
		c.JSON(http.StatusOK, models.EmptyResult[bool](""))
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": req.ID, "rows_affected": affected}).Info("user inserted")
	observability.IncSQLStatement("add_user", "ok")
	emitAudit(c, h.audit, "INFO", "user added")
	c.JSON(http.StatusOK, models.NewResult("user added", true))
}

// SearchUser handles POST /user/search. The id is expected unique but the
// response carries a list. A query failure and an empty result get distinct
// messages; both keep the empty-list payload.
func (h *UserHandler) SearchUser(c *gin.Context) {
	var req struct {
		ID int64 `json:"id"`
		// Name is accepted for wire compatibility and ignored.
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	users, err := h.users.SearchByID(c.Request.Context(), req.ID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", req.ID).Error("search user failed")
		observability.IncSQLStatement("search_user", "error")
		c.JSON(http.StatusOK, models.NewResult("user search failed", []models.User{}))
		return
	}
	if len(users) == 0 {
		observability.IncSQLStatement("search_user", "no_match")
		c.JSON(http.StatusOK, models.NewResult("no user matched the given id", []models.User{}))
		return
	}

	observability.IncSQLStatement("search_user", "ok")
	c.JSON(http.StatusOK, models.NewResult("user found", users))
}

// DeleteUser handles POST /user/delete. Deletion requires id, name and
// password to all match; anything else reports the not-found envelope with a
// zero count.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var req struct {
		ID       int64  `json:"id"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affected, err := h.users.Delete(c.Request.Context(), models.User{ID: req.ID, Name: req.Name, Password: req.Password})
	if err != nil {
		logrus.WithError(err).WithField("user_id", req.ID).Error("delete user failed")
		observability.IncSQLStatement("delete_user", "error")
		c.JSON(http.StatusOK, models.NewResult("no matching user to delete", int64(0)))
		return
	}
	if affected == 0 {
		observability.IncSQLStatement("delete_user", "no_match")
		c.JSON(http.StatusOK, models.NewResult("no matching user to delete", int64(0)))
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": req.ID, "rows_affected": affected}).Info("user deleted")
	observability.IncSQLStatement("delete_user", "ok")
	emitAudit(c, h.audit, "INFO", "user deleted")
	c.JSON(http.StatusOK, models.NewResult("user deleted", affected))
}
