package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"chatroom-service/internal/models"
)

// statementTimeout bounds every statement; the database enforces nothing by
// default.
const statementTimeout = 5 * time.Second

// UserRepository abstracts user persistence.
type UserRepository interface {
	Add(ctx context.Context, user models.User) (int64, error)
	SearchByID(ctx context.Context, id int64) ([]models.User, error)
	Delete(ctx context.Context, user models.User) (int64, error)
}

// UserRepo is a sqlx implementation of UserRepository.
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo constructs a UserRepo.
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Add inserts a user row and reports how many rows the insert touched.
func (r *UserRepo) Add(ctx context.Context, user models.User) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, password) VALUES ($1, $2, $3)`,
		user.ID, user.Name, user.Password)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SearchByID returns every user row matching the id. The id is expected to be
// unique, but the wire contract is a list.
func (r *UserRepo) SearchByID(ctx context.Context, id int64) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	var users []models.User
	err := r.db.SelectContext(ctx, &users,
		`SELECT id, name, password FROM users WHERE id = $1`, id)
	return users, err
}

// Delete removes rows matching id, name and password simultaneously. All
// three must match; this is a credential check, not an id lookup.
func (r *UserRepo) Delete(ctx context.Context, user models.User) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, statementTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE id = $1 AND name = $2 AND password = $3`,
		user.ID, user.Name, user.Password)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
