package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/NishantGawd/sj-fitness/internal/model"
)

// LedgerRepository records a verified payment completion: upsert the
// user, write the paid payment keyed on (provider, provider_ref), and
// activate the membership linked to it.
type LedgerRepository interface {
	RecordPaid(ctx context.Context, user model.User, payment model.Payment, membership model.Membership) (string, error)
}

type SQLLedgerRepository struct {
	db *sqlx.DB
}

func NewLedgerRepository(db *sqlx.DB) LedgerRepository {
	return &SQLLedgerRepository{
		db: db,
	}
}

// RecordPaid runs all three writes in one transaction, so a crash cannot
// leave a paid payment without its membership update. Returns the id of
// the payment row the membership was linked to.
func (r *SQLLedgerRepository) RecordPaid(ctx context.Context, user model.User, payment model.Payment, membership model.Membership) (string, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}

	if err := upsertUserExec(ctx, tx, user); err != nil {
		tx.Rollback()
		return "", err
	}

	paymentID, err := upsertPaidPaymentExec(ctx, tx, &payment)
	if err != nil {
		tx.Rollback()
		return "", err
	}

	membership.PaymentID = sql.NullString{String: paymentID, Valid: true}
	if err := upsertMembershipExec(ctx, tx, &membership); err != nil {
		tx.Rollback()
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return paymentID, nil
}
