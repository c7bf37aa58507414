package models

import "github.com/lib/pq"

// ChatRoom represents a room with append-only message and member lists.
// Messages stays NULL until the first send; UserList defaults to empty.
type ChatRoom struct {
	ID       int64          `db:"id" json:"id"`
	Name     string         `db:"name" json:"name"`
	Password string         `db:"password" json:"password"`
	Messages pq.StringArray `db:"messages" json:"messages"`
	UserList pq.Int64Array  `db:"user_list" json:"user_list"`
}
