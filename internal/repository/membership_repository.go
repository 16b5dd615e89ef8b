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

type MembershipRepository interface {
	UpsertActive(ctx context.Context, membership *model.Membership) error
	GetCurrentByEmail(ctx context.Context, email string) (*model.Membership, error)
}

type SQLMembershipRepository struct {
	db *sqlx.DB
}

func NewMembershipRepository(db *sqlx.DB) MembershipRepository {
	return &SQLMembershipRepository{
		db: db,
	}
}

func (r *SQLMembershipRepository) UpsertActive(ctx context.Context, membership *model.Membership) error {
	return upsertMembershipExec(ctx, r.db, membership)
}

// GetCurrentByEmail returns the email's trial or active row, if any.
// Expiry is advisory: a row whose end date has passed is still returned
// with its stored status, readers interpret the timestamp.
func (r *SQLMembershipRepository) GetCurrentByEmail(ctx context.Context, email string) (*model.Membership, error) {
	var membership model.Membership

	query := `
		SELECT * FROM memberships
		WHERE user_email = ? AND status IN ('active', 'trial')
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &membership, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &membership, nil
}

// upsertMembershipExec replaces the email's single trial/active row, or
// inserts one if none exists. A new activation supersedes rather than
// adding a second concurrent entitlement. Select-then-write rather than
// relying on affected-row counts, which MySQL reports as zero for a
// no-change update.
func upsertMembershipExec(ctx context.Context, ext sqlx.ExtContext, membership *model.Membership) error {
	membership.UpdatedAt = time.Now()
	if membership.StartedAt.IsZero() {
		membership.StartedAt = time.Now()
	}

	var id string
	err := sqlx.GetContext(ctx, ext, &id,
		`SELECT id FROM memberships WHERE user_email = ? AND status IN ('active', 'trial') LIMIT 1`,
		membership.UserEmail)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if id != "" {
		membership.ID = id

		updateQuery := `
			UPDATE memberships SET
				plan       = :plan,
				status     = :status,
				started_at = :started_at,
				ends_at    = :ends_at,
				payment_id = :payment_id,
				provider   = :provider,
				updated_at = :updated_at
			WHERE id = :id
		`

		_, err = sqlx.NamedExecContext(ctx, ext, updateQuery, membership)
		return err
	}

	if membership.ID == "" {
		membership.ID = uuid.New().String()
	}

	insertQuery := `
		INSERT INTO memberships (
			id, user_email, plan, status, started_at, ends_at,
			payment_id, provider, updated_at
		) VALUES (
			:id, :user_email, :plan, :status, :started_at, :ends_at,
			:payment_id, :provider, :updated_at
		)
	`

	_, err = sqlx.NamedExecContext(ctx, ext, insertQuery, membership)
	return err
}
