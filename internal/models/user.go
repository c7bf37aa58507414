package models

// User is an account row. Passwords are stored and compared as opaque plain
// strings; this service deliberately does no hashing.
type User struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Password string `db:"password" json:"password"`
}
