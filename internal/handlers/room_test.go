package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chatroom-service/internal/mocks"
	"chatroom-service/internal/models"
)

func setupRoomRouter(handler *RoomHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/room/create", handler.CreateRoom)
	r.POST("/room/enter", handler.EnterRoom)
	return r
}

func TestCreateRoomSuccess(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	router := setupRoomRouter(NewRoomHandler(roomRepo, nil))

	roomRepo.On("Create", mock.Anything, "general", "p").Return(models.ChatRoom{ID: 1, Name: "general", Password: "p"}, nil).Once()

	rec, resp := postJSON(t, router, "/room/create", `{"room_name":"general","password":"p"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "room created", resp["message"])
	assert.Equal(t, true, resp["data"])
	roomRepo.AssertExpectations(t)
}

func TestCreateRoomIgnoresRoomIDAndUserID(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	router := setupRoomRouter(NewRoomHandler(roomRepo, nil))

	// Only name and password reach the insert; the mock argument match fails
	// if room_id or user_id leak through.
	roomRepo.On("Create", mock.Anything, "general", "p").Return(models.ChatRoom{ID: 42, Name: "general", Password: "p"}, nil).Once()

	rec, resp := postJSON(t, router, "/room/create", `{"room_id":999,"room_name":"general","password":"p","user_id":7}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, resp["data"])
	roomRepo.AssertExpectations(t)
}

func TestCreateRoomFailure(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	router := setupRoomRouter(NewRoomHandler(roomRepo, nil))

	roomRepo.On("Create", mock.Anything, "general", "p").Return(models.ChatRoom{}, assert.AnError).Once()

	rec, resp := postJSON(t, router, "/room/create", `{"room_name":"general","password":"p"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "room creation failed", resp["message"])
	assert.Equal(t, false, resp["data"])
	roomRepo.AssertExpectations(t)
}

func TestEnterRoomSuccess(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	router := setupRoomRouter(NewRoomHandler(roomRepo, nil))

	roomRepo.On("Enter", mock.Anything, int64(1), "general", "p", int64(7)).Return(int64(1), nil).Once()

	rec, resp := postJSON(t, router, "/room/enter", `{"room_id":1,"room_name":"general","password":"p","user_id":7}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "entered room", resp["message"])
	assert.Equal(t, true, resp["data"])
	roomRepo.AssertExpectations(t)
}

func TestEnterRoomCredentialMismatch(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	router := setupRoomRouter(NewRoomHandler(roomRepo, nil))

	// The update matched no row. The original service reported success here
	// as long as the statement executed; success now requires at least one
	// matched row.
	roomRepo.On("Enter", mock.Anything, int64(1), "general", "wrong", int64(7)).Return(int64(0), nil).Once()

	rec, resp := postJSON(t, router, "/room/enter", `{"room_id":1,"room_name":"general","password":"wrong","user_id":7}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "room credentials did not match", resp["message"])
	assert.Equal(t, false, resp["data"])
	roomRepo.AssertExpectations(t)
}

func TestEnterRoomStatementError(t *testing.T) {
	roomRepo := new(mocks.RoomRepositoryMock)
	router := setupRoomRouter(NewRoomHandler(roomRepo, nil))

	roomRepo.On("Enter", mock.Anything, int64(1), "general", "p", int64(7)).Return(int64(0), assert.AnError).Once()

	rec, resp := postJSON(t, router, "/room/enter", `{"room_id":1,"room_name":"general","password":"p","user_id":7}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "room entry failed", resp["message"])
	assert.Nil(t, resp["data"])
	roomRepo.AssertExpectations(t)
}
