package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Table DDL. The unique key on (provider, provider_ref) is the one hard
// invariant the workflow relies on: it is what makes a retried completion
// update instead of duplicate.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         CHAR(36)     NOT NULL,
		name       VARCHAR(255) NOT NULL DEFAULT '',
		email      VARCHAR(255) NOT NULL DEFAULT '',
		phone      VARCHAR(32)  NOT NULL DEFAULT '',
		created_at DATETIME     NOT NULL,
		updated_at DATETIME     NOT NULL,
		PRIMARY KEY (id),
		KEY idx_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id           CHAR(36)     NOT NULL,
		provider     VARCHAR(16)  NOT NULL,
		provider_ref VARCHAR(128) NOT NULL,
		amount       BIGINT       NOT NULL DEFAULT 0,
		currency     CHAR(3)      NOT NULL DEFAULT 'INR',
		status       VARCHAR(16)  NOT NULL,
		user_name    VARCHAR(255) NOT NULL DEFAULT '',
		user_email   VARCHAR(255) NOT NULL DEFAULT '',
		user_phone   VARCHAR(32)  NOT NULL DEFAULT '',
		notes        TEXT,
		created_at   DATETIME     NOT NULL,
		updated_at   DATETIME     NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uniq_payments_provider_ref (provider, provider_ref)
	)`,
	`CREATE TABLE IF NOT EXISTS memberships (
		id         CHAR(36)     NOT NULL,
		user_email VARCHAR(255) NOT NULL,
		plan       VARCHAR(64)  NOT NULL DEFAULT '',
		status     VARCHAR(16)  NOT NULL,
		started_at DATETIME     NOT NULL,
		ends_at    DATETIME     NULL,
		payment_id CHAR(36)     NULL,
		provider   VARCHAR(16)  NOT NULL DEFAULT '',
		updated_at DATETIME     NOT NULL,
		PRIMARY KEY (id),
		KEY idx_memberships_user_status (user_email, status)
	)`,
	`CREATE TABLE IF NOT EXISTS trials (
		id         CHAR(36)     NOT NULL,
		name       VARCHAR(255) NOT NULL DEFAULT '',
		email      VARCHAR(255) NOT NULL DEFAULT '',
		phone      VARCHAR(32)  NOT NULL DEFAULT '',
		issued_at  DATETIME     NOT NULL,
		expires_at DATETIME     NOT NULL,
		used       BOOLEAN      NOT NULL DEFAULT FALSE,
		PRIMARY KEY (id),
		KEY idx_trials_email_expiry (email, expires_at)
	)`,
}

// EnsureSchema creates the tables and indexes on startup.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
