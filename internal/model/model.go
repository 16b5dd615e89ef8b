package model

import (
	"database/sql"
	"time"
)

type PaymentProvider string

const (
	ProviderRazorpay PaymentProvider = "razorpay"
	ProviderStripe   PaymentProvider = "stripe"
)

type PaymentStatus string

const (
	PaymentStatusCreated    PaymentStatus = "created"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

type MembershipStatus string

const (
	MembershipStatusTrial    MembershipStatus = "trial"
	MembershipStatusActive   MembershipStatus = "active"
	MembershipStatusCanceled MembershipStatus = "canceled"
	MembershipStatusExpired  MembershipStatus = "expired"
)

type User struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Payment records one attempted or completed transaction. The pair
// (provider, provider_ref) is unique in storage; a second write for the
// same reference updates the existing row instead of inserting.
type Payment struct {
	ID          string          `json:"id" db:"id"`
	Provider    PaymentProvider `json:"provider" db:"provider"`
	ProviderRef string          `json:"providerRef" db:"provider_ref"`
	Amount      int64           `json:"amount" db:"amount"` // smallest currency unit (paise for INR)
	Currency    string          `json:"currency" db:"currency"`
	Status      PaymentStatus   `json:"status" db:"status"`
	UserName    string          `json:"userName" db:"user_name"`
	UserEmail   string          `json:"userEmail" db:"user_email"`
	UserPhone   string          `json:"userPhone" db:"user_phone"`
	Notes       string          `json:"notes" db:"notes"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// Membership is keyed by user email: at most one row per email is in
// trial or active status at a time, so activation updates in place.
type Membership struct {
	ID        string           `json:"id" db:"id"`
	UserEmail string           `json:"userEmail" db:"user_email"`
	Plan      string           `json:"plan" db:"plan"`
	Status    MembershipStatus `json:"status" db:"status"`
	StartedAt time.Time        `json:"startedAt" db:"started_at"`
	EndsAt    sql.NullTime     `json:"endsAt" db:"ends_at"`
	PaymentID sql.NullString   `json:"paymentId" db:"payment_id"`
	Provider  PaymentProvider  `json:"provider" db:"provider"`
	UpdatedAt time.Time        `json:"updatedAt" db:"updated_at"`
}

// TrialPass is a time-boxed single-use grant. Immutable after issue
// except for the Used flag.
type TrialPass struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	IssuedAt  time.Time `json:"issuedAt" db:"issued_at"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Used      bool      `json:"used" db:"used"`
}
