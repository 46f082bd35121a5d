package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"todo_service/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of UserStore interface at compile time.
var _ UserStore = (*UserSQLite)(nil)

const (
	insertUserSQL         = `INSERT INTO users (id, username, email, password_hash) VALUES (?, ?, ?, ?)`
	selectUserByEmailSQL  = `SELECT id, username, email, password_hash FROM users WHERE email = ?`
	selectUserByIDSQL     = `SELECT id, username, email, password_hash FROM users WHERE id = ?`
	updatePasswordSQL     = `UPDATE users SET password_hash = ? WHERE id = ?`
	deleteUserByIDSQL     = `DELETE FROM users WHERE id = ?`
)

// Create assigns a fresh id and inserts the user. A UNIQUE violation on
// email or username is translated into ErrEmailTaken / ErrUsernameTaken.
func (r *UserSQLite) Create(ctx context.Context, u *models.User) error {
	u.ID = uuid.NewString()
	if _, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Username, u.Email, u.PasswordHash); err != nil {
		if conflict := asConflict(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserByEmailSQL, email)
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUserByIDSQL, id)
}

func (r *UserSQLite) getOne(ctx context.Context, query, arg string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", arg, err)
	}
	return &u, nil
}

// UpdateDetails applies the non-nil fields of patch and returns the updated
// user. Returns (nil, nil) if the id does not exist. An empty patch is a
// no-op read.
func (r *UserSQLite) UpdateDetails(ctx context.Context, id string, patch DetailsPatch) (*models.User, error) {
	set := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if patch.Username != nil {
		set = append(set, "username = ?")
		args = append(args, *patch.Username)
	}
	if patch.Email != nil {
		set = append(set, "email = ?")
		args = append(args, *patch.Email)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)

	query := "UPDATE users SET " + strings.Join(set, ", ") + " WHERE id = ?"
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if conflict := asConflict(err); conflict != nil {
			return nil, conflict
		}
		return nil, fmt.Errorf("update user %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected for user %q: %w", id, err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// UpdatePassword replaces the stored hash and returns the updated user.
// Returns (nil, nil) if the id does not exist.
func (r *UserSQLite) UpdatePassword(ctx context.Context, id, passwordHash string) (*models.User, error) {
	res, err := r.db.ExecContext(ctx, updatePasswordSQL, passwordHash, id)
	if err != nil {
		return nil, fmt.Errorf("update password for user %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected for user %q: %w", id, err)
	}
	if affected == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// Delete removes the user and reports whether it existed.
func (r *UserSQLite) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteUserByIDSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete user %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for user %q: %w", id, err)
	}
	return affected > 0, nil
}

// asConflict maps a sqlite UNIQUE violation onto the typed conflict errors.
// The driver exposes the failing column only through the error text
// ("UNIQUE constraint failed: users.email").
func asConflict(err error) error {
	if err == nil || !strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return nil
	}
	if strings.Contains(err.Error(), "users.email") {
		return ErrEmailTaken
	}
	if strings.Contains(err.Error(), "users.username") {
		return ErrUsernameTaken
	}
	return nil
}
