package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/NishantGawd/sj-fitness/internal/model"
)

type UserRepository interface {
	Upsert(ctx context.Context, user model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type SQLUserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &SQLUserRepository{
		db: db,
	}
}

func (r *SQLUserRepository) Upsert(ctx context.Context, user model.User) error {
	return upsertUserExec(ctx, r.db, user)
}

func (r *SQLUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	query := `SELECT * FROM users WHERE email = ? LIMIT 1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// upsertUserExec matches on whichever contact fields are present. Users
// are not unique-keyed in storage, so this is a select-then-write; a user
// with neither email nor phone is skipped.
func upsertUserExec(ctx context.Context, ext sqlx.ExtContext, user model.User) error {
	if user.Email == "" && user.Phone == "" {
		return nil
	}

	where := ""
	var args []interface{}
	if user.Email != "" {
		where = "email = ?"
		args = append(args, user.Email)
	}
	if user.Phone != "" {
		if where != "" {
			where += " AND "
		}
		where += "phone = ?"
		args = append(args, user.Phone)
	}

	var id string
	err := sqlx.GetContext(ctx, ext, &id, "SELECT id FROM users WHERE "+where+" LIMIT 1", args...)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	now := time.Now()
	if errors.Is(err, sql.ErrNoRows) {
		insertQuery := `
			INSERT INTO users (id, name, email, phone, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		_, err = ext.ExecContext(ctx, insertQuery,
			uuid.New().String(), user.Name, user.Email, user.Phone, now, now)
		return err
	}

	updateQuery := `UPDATE users SET name = ?, updated_at = ? WHERE id = ?`
	_, err = ext.ExecContext(ctx, updateQuery, user.Name, now, id)
	return err
}
