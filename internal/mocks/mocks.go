package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"chatroom-service/internal/models"
)

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) Add(ctx context.Context, user models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepositoryMock) SearchByID(ctx context.Context, id int64) ([]models.User, error) {
	args := m.Called(ctx, id)
	var users []models.User
	if val := args.Get(0); val != nil {
		users = val.([]models.User)
	}
	return users, args.Error(1)
}

func (m *UserRepositoryMock) Delete(ctx context.Context, user models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

type RoomRepositoryMock struct {
	mock.Mock
}

func (m *RoomRepositoryMock) Create(ctx context.Context, name, password string) (models.ChatRoom, error) {
	args := m.Called(ctx, name, password)
	var room models.ChatRoom
	if val := args.Get(0); val != nil {
		room = val.(models.ChatRoom)
	}
	return room, args.Error(1)
}

func (m *RoomRepositoryMock) Enter(ctx context.Context, roomID int64, name, password string, userID int64) (int64, error) {
	args := m.Called(ctx, roomID, name, password, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RoomRepositoryMock) AppendMessage(ctx context.Context, roomID int64, text string) (int64, error) {
	args := m.Called(ctx, roomID, text)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RoomRepositoryMock) Messages(ctx context.Context, roomID int64) ([]string, error) {
	args := m.Called(ctx, roomID)
	var msgs []string
	if val := args.Get(0); val != nil {
		msgs = val.([]string)
	}
	return msgs, args.Error(1)
}
