package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"chatroom-service/internal/models"
)

var (
	ErrRoomNotFound  = errors.New("chat room not found")
	ErrMessagesUnset = errors.New("chat room messages unset")
)

// RoomRepository abstracts chat room persistence. Both list columns are
// append-only; appends are single conditional UPDATEs so concurrent appends
// to the same room cannot lose each other's writes.
type RoomRepository interface {
	Create(ctx context.Context, name, password string) (models.ChatRoom, error)
	Enter(ctx context.Context, roomID int64, name, password string, userID int64) (int64, error)
	AppendMessage(ctx context.Context, roomID int64, text string) (int64, error)
	Messages(ctx context.Context, roomID int64) ([]string, error)
}

// RoomRepo is a sqlx implementation of RoomRepository.
type RoomRepo struct {
	db *sqlx.DB
}

// NewRoomRepo constructs a RoomRepo.
func NewRoomRepo(db *sqlx.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// Create inserts a room with the given name and password; the database
// assigns the id.
func (r *RoomRepo) Create(ctx context.Context, name, password string) (models.ChatRoom, error) {
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	var room models.ChatRoom
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO chat_rooms (name, password) VALUES ($1, $2) RETURNING id, name, password`,
		name, password).
		Scan(&room.ID, &room.Name, &room.Password)
	return room, err
}

// Enter appends the user id to the room's member list, gated on the room id,
// name and password all matching. Returns the number of rows the update
// matched; zero means the credentials did not identify a room.
func (r *RoomRepo) Enter(ctx context.Context, roomID int64, name, password string, userID int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE chat_rooms SET user_list = array_append(user_list, $1)
         WHERE id = $2 AND name = $3 AND password = $4`,
		userID, roomID, name, password)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// AppendMessage appends text to the room's message list, gated on the room id
// only. array_append on the initial NULL column yields a one-element list.
func (r *RoomRepo) AppendMessage(ctx context.Context, roomID int64, text string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE chat_rooms SET messages = array_append(messages, $1) WHERE id = $2`,
		text, roomID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Messages returns the room's message list. A missing row yields
// ErrRoomNotFound; a row whose messages column is still NULL yields
// ErrMessagesUnset so callers can treat it as a broken invariant rather than
// substitute a default.
func (r *RoomRepo) Messages(ctx context.Context, roomID int64) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	var msgs pq.StringArray
	err := r.db.QueryRowxContext(ctx,
		`SELECT messages FROM chat_rooms WHERE id = $1`, roomID).Scan(&msgs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		return nil, ErrMessagesUnset
	}
	return []string(msgs), nil
}
