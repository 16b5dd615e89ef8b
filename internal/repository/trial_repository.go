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

type TrialRepository interface {
	FindActive(ctx context.Context, email string, now time.Time) (*model.TrialPass, error)
	Create(ctx context.Context, pass *model.TrialPass) error
	MarkUsed(ctx context.Context, id string) error
}

type SQLTrialRepository struct {
	db *sqlx.DB
}

func NewTrialRepository(db *sqlx.DB) TrialRepository {
	return &SQLTrialRepository{
		db: db,
	}
}

// FindActive returns the email's unexpired, unused pass if one exists.
func (r *SQLTrialRepository) FindActive(ctx context.Context, email string, now time.Time) (*model.TrialPass, error) {
	var pass model.TrialPass

	query := `
		SELECT * FROM trials
		WHERE email = ? AND expires_at >= ? AND used = FALSE
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &pass, query, email, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &pass, nil
}

func (r *SQLTrialRepository) Create(ctx context.Context, pass *model.TrialPass) error {
	if pass.ID == "" {
		pass.ID = uuid.New().String()
	}

	query := `
		INSERT INTO trials (id, name, email, phone, issued_at, expires_at, used)
		VALUES (:id, :name, :email, :phone, :issued_at, :expires_at, :used)
	`

	_, err := sqlx.NamedExecContext(ctx, r.db, query, pass)
	return err
}

// MarkUsed flips the single-use flag at redemption time.
func (r *SQLTrialRepository) MarkUsed(ctx context.Context, id string) error {
	query := `UPDATE trials SET used = TRUE WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errors.New("trial pass not found")
	}

	return nil
}
