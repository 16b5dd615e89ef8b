package service_test

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/NishantGawd/sj-fitness/internal/model"
)

// MockStore is an in-memory stand-in for the SQL repositories. One
// instance backs the user, payment, and ledger interfaces so tests can
// watch a completion flow end to end.
type MockStore struct {
	Users       map[string]model.User      // by email
	Payments    map[string]*model.Payment  // by provider+ref
	Memberships map[string]*model.Membership // by email

	UpsertUserErr error
	CreateErr     error
	LedgerErr     error

	nextID int
}

func NewMockStore() *MockStore {
	return &MockStore{
		Users:       make(map[string]model.User),
		Payments:    make(map[string]*model.Payment),
		Memberships: make(map[string]*model.Membership),
	}
}

func (s *MockStore) paymentKey(provider model.PaymentProvider, ref string) string {
	return string(provider) + "/" + ref
}

func (s *MockStore) genID() string {
	s.nextID++
	return fmt.Sprintf("id-%d", s.nextID)
}

func (s *MockStore) Upsert(ctx context.Context, user model.User) error {
	if s.UpsertUserErr != nil {
		return s.UpsertUserErr
	}
	if user.Email == "" && user.Phone == "" {
		return nil
	}
	s.Users[user.Email] = user
	return nil
}

func (s *MockStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u, ok := s.Users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (s *MockStore) Create(ctx context.Context, payment *model.Payment) error {
	if s.CreateErr != nil {
		return s.CreateErr
	}
	key := s.paymentKey(payment.Provider, payment.ProviderRef)
	if _, exists := s.Payments[key]; exists {
		return nil
	}
	if payment.ID == "" {
		payment.ID = s.genID()
	}
	cp := *payment
	s.Payments[key] = &cp
	return nil
}

func (s *MockStore) GetByProviderRef(ctx context.Context, provider model.PaymentProvider, ref string) (*model.Payment, error) {
	p, ok := s.Payments[s.paymentKey(provider, ref)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *MockStore) UpdateStatus(ctx context.Context, provider model.PaymentProvider, ref string, status model.PaymentStatus) error {
	if p, ok := s.Payments[s.paymentKey(provider, ref)]; ok {
		p.Status = status
	}
	return nil
}

func (s *MockStore) RecordPaid(ctx context.Context, user model.User, payment model.Payment, membership model.Membership) (string, error) {
	if s.LedgerErr != nil {
		return "", s.LedgerErr
	}

	if err := s.Upsert(ctx, user); err != nil {
		return "", err
	}

	key := s.paymentKey(payment.Provider, payment.ProviderRef)
	existing, ok := s.Payments[key]
	if ok {
		existing.Status = payment.Status
		if payment.Amount > 0 {
			existing.Amount = payment.Amount
		}
	} else {
		if payment.ID == "" {
			payment.ID = s.genID()
		}
		cp := payment
		s.Payments[key] = &cp
		existing = s.Payments[key]
	}

	membership.PaymentID = sql.NullString{String: existing.ID, Valid: true}
	if current, ok := s.Memberships[membership.UserEmail]; ok {
		membership.ID = current.ID
	} else if membership.ID == "" {
		membership.ID = s.genID()
	}
	cp := membership
	s.Memberships[membership.UserEmail] = &cp

	return existing.ID, nil
}

// MockTrialStore is the in-memory trial pass table.
type MockTrialStore struct {
	Passes []*model.TrialPass

	nextID int
}

func (s *MockTrialStore) FindActive(ctx context.Context, email string, now time.Time) (*model.TrialPass, error) {
	for _, p := range s.Passes {
		if p.Email == email && !p.Used && !p.ExpiresAt.Before(now) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *MockTrialStore) Create(ctx context.Context, pass *model.TrialPass) error {
	if pass.ID == "" {
		s.nextID++
		pass.ID = fmt.Sprintf("trial-%d", s.nextID)
	}
	cp := *pass
	s.Passes = append(s.Passes, &cp)
	return nil
}

func (s *MockTrialStore) MarkUsed(ctx context.Context, id string) error {
	for _, p := range s.Passes {
		if p.ID == id {
			p.Used = true
			return nil
		}
	}
	return fmt.Errorf("trial pass not found")
}

// MockGateway records provider calls and returns canned entities.
type MockGateway struct {
	OrderErr        error
	PlanErr         error
	SubscriptionErr error
	ListErr         error

	Orders        []map[string]interface{}
	CreatedPlans  []map[string]interface{}
	Subscriptions []map[string]interface{}
	LastPlanID    string
	LastTotal     int

	ListResult []map[string]interface{}
}

func (g *MockGateway) CreateOrder(ctx context.Context, amount int64, currency, receiptID string, notes map[string]interface{}) (map[string]interface{}, error) {
	if g.OrderErr != nil {
		return nil, g.OrderErr
	}
	order := map[string]interface{}{
		"id":       "order_test001",
		"amount":   float64(amount),
		"currency": currency,
		"receipt":  receiptID,
		"notes":    notes,
	}
	g.Orders = append(g.Orders, order)
	return order, nil
}

func (g *MockGateway) CreatePlan(ctx context.Context, period string, interval int, name string, amount int64, notes map[string]interface{}) (map[string]interface{}, error) {
	if g.PlanErr != nil {
		return nil, g.PlanErr
	}
	plan := map[string]interface{}{
		"id":       "plan_created001",
		"period":   period,
		"interval": float64(interval),
	}
	g.CreatedPlans = append(g.CreatedPlans, plan)
	return plan, nil
}

func (g *MockGateway) CreateSubscription(ctx context.Context, planID string, totalCount int, notes map[string]interface{}) (map[string]interface{}, error) {
	if g.SubscriptionErr != nil {
		return nil, g.SubscriptionErr
	}
	g.LastPlanID = planID
	g.LastTotal = totalCount
	sub := map[string]interface{}{
		"id":        "sub_test001",
		"plan_id":   planID,
		"short_url": "https://rzp.io/i/test",
		"notes":     notes,
	}
	g.Subscriptions = append(g.Subscriptions, sub)
	return sub, nil
}

func (g *MockGateway) ListSubscriptions(ctx context.Context, count int) ([]map[string]interface{}, error) {
	if g.ListErr != nil {
		return nil, g.ListErr
	}
	return g.ListResult, nil
}

// MockMailer records sends instead of calling the email API.
type MockMailer struct {
	Err error

	Receipts  []model.Receipt
	DayPasses []model.DayPassEmailRequest
	Reminders []string // recipient emails
}

func (m *MockMailer) SendReceipt(ctx context.Context, receipt model.Receipt) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.Receipts = append(m.Receipts, receipt)
	return "msg-receipt", nil
}

func (m *MockMailer) SendDayPass(ctx context.Context, req model.DayPassEmailRequest) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.DayPasses = append(m.DayPasses, req)
	return "msg-daypass", nil
}

func (m *MockMailer) SendReminder(ctx context.Context, email, name, duration string, daysLeft int) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.Reminders = append(m.Reminders, email)
	return "msg-reminder", nil
}
