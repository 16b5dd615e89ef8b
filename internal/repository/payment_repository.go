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

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
	GetByProviderRef(ctx context.Context, provider model.PaymentProvider, providerRef string) (*model.Payment, error)
	UpdateStatus(ctx context.Context, provider model.PaymentProvider, providerRef string, status model.PaymentStatus) error
}

type SQLPaymentRepository struct {
	db *sqlx.DB
}

func NewPaymentRepository(db *sqlx.DB) PaymentRepository {
	return &SQLPaymentRepository{
		db: db,
	}
}

// Create records the pending snapshot taken when a purchase intent is
// requested. The unique key absorbs a duplicate snapshot for the same
// provider reference.
func (r *SQLPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()

	query := `
		INSERT INTO payments (
			id, provider, provider_ref, amount, currency, status,
			user_name, user_email, user_phone, notes, created_at, updated_at
		) VALUES (
			:id, :provider, :provider_ref, :amount, :currency, :status,
			:user_name, :user_email, :user_phone, :notes, :created_at, :updated_at
		)
		ON DUPLICATE KEY UPDATE updated_at = VALUES(updated_at)
	`

	_, err := sqlx.NamedExecContext(ctx, r.db, query, payment)
	return err
}

func (r *SQLPaymentRepository) GetByProviderRef(ctx context.Context, provider model.PaymentProvider, providerRef string) (*model.Payment, error) {
	var payment model.Payment

	query := `SELECT * FROM payments WHERE provider = ? AND provider_ref = ?`

	err := r.db.GetContext(ctx, &payment, query, provider, providerRef)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}

func (r *SQLPaymentRepository) UpdateStatus(ctx context.Context, provider model.PaymentProvider, providerRef string, status model.PaymentStatus) error {
	query := `
		UPDATE payments SET status = ?, updated_at = ?
		WHERE provider = ? AND provider_ref = ?
	`

	_, err := r.db.ExecContext(ctx, query, status, time.Now(), provider, providerRef)
	return err
}

// upsertPaidPaymentExec writes the paid row keyed on (provider,
// provider_ref) and returns the id of the surviving row. A retried
// completion for the same reference updates in place; an amount of zero
// never clobbers a previously snapshotted amount.
func upsertPaidPaymentExec(ctx context.Context, ext sqlx.ExtContext, payment *model.Payment) (string, error) {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}

	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()

	query := `
		INSERT INTO payments (
			id, provider, provider_ref, amount, currency, status,
			user_name, user_email, user_phone, notes, created_at, updated_at
		) VALUES (
			:id, :provider, :provider_ref, :amount, :currency, :status,
			:user_name, :user_email, :user_phone, :notes, :created_at, :updated_at
		)
		ON DUPLICATE KEY UPDATE
			status     = VALUES(status),
			amount     = IF(VALUES(amount) > 0, VALUES(amount), amount),
			updated_at = VALUES(updated_at)
	`

	if _, err := sqlx.NamedExecContext(ctx, ext, query, payment); err != nil {
		return "", err
	}

	var id string
	err := sqlx.GetContext(ctx, ext, &id,
		`SELECT id FROM payments WHERE provider = ? AND provider_ref = ?`,
		payment.Provider, payment.ProviderRef)
	if err != nil {
		return "", err
	}

	return id, nil
}
