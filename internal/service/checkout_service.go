package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/NishantGawd/sj-fitness/internal/config"
	"github.com/NishantGawd/sj-fitness/internal/model"
	"github.com/NishantGawd/sj-fitness/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("missing razorpay credentials")
	ErrInvalidAmount      = errors.New("amount must be at least 100 paise")
)

// PaymentGateway is the slice of the provider API the services need.
// Satisfied by razorpay.Client.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string, receiptID string, notes map[string]interface{}) (map[string]interface{}, error)
	CreatePlan(ctx context.Context, period string, interval int, name string, amount int64, notes map[string]interface{}) (map[string]interface{}, error)
	CreateSubscription(ctx context.Context, planID string, totalCount int, notes map[string]interface{}) (map[string]interface{}, error)
	ListSubscriptions(ctx context.Context, count int) ([]map[string]interface{}, error)
}

type CheckoutService interface {
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error)
	CreateSubscription(ctx context.Context, req *model.CreateSubscriptionRequest) (*model.CreateSubscriptionResponse, error)
}

type DefaultCheckoutService struct {
	gateway     PaymentGateway
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	config      *config.Config
}

func NewCheckoutService(
	gateway PaymentGateway,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	config *config.Config,
) CheckoutService {
	return &DefaultCheckoutService{
		gateway:     gateway,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		config:      config,
	}
}

func (s *DefaultCheckoutService) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.CreateOrderResponse, error) {
	if s.config.Razorpay.KeyID == "" || s.config.Razorpay.KeySecret == "" {
		return nil, ErrMissingCredentials
	}

	// Sub-unit purchases are disallowed.
	if req.Amount < 100 {
		return nil, ErrInvalidAmount
	}

	notes := map[string]interface{}{
		"name":  req.Name,
		"email": req.Email,
		"phone": req.Phone,
	}
	for k, v := range req.Notes {
		notes[k] = v
	}

	receiptID := fmt.Sprintf("rcpt_%d", time.Now().UnixMilli())

	order, err := s.gateway.CreateOrder(ctx, req.Amount, "INR", receiptID, notes)
	if err != nil {
		return nil, err
	}

	orderID, _ := order["id"].(string)

	// Best-effort pending snapshot: the checkout proceeds even if the
	// write fails.
	s.persistPending(ctx, orderID, req.Amount, model.ContactInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}, req.Notes)

	return &model.CreateOrderResponse{
		OrderID: orderID,
		KeyID:   s.config.Razorpay.KeyID,
	}, nil
}

func (s *DefaultCheckoutService) CreateSubscription(ctx context.Context, req *model.CreateSubscriptionRequest) (*model.CreateSubscriptionResponse, error) {
	if s.config.Razorpay.KeyID == "" || s.config.Razorpay.KeySecret == "" {
		return nil, ErrMissingCredentials
	}

	plan, err := PlanFor(req.Duration)
	if err != nil {
		return nil, err
	}

	planID := s.config.Razorpay.PlanIDs[req.Duration]
	if planID == "" {
		created, err := s.gateway.CreatePlan(ctx, plan.Period, plan.Interval, plan.Label, plan.Amount,
			map[string]interface{}{"duration": req.Duration})
		if err != nil {
			return nil, err
		}
		planID, _ = created["id"].(string)
	}

	notes := map[string]interface{}{
		"name":     req.Name,
		"email":    req.Email,
		"phone":    req.Phone,
		"duration": req.Duration,
	}
	for k, v := range req.Notes {
		notes[k] = v
	}

	subscription, err := s.gateway.CreateSubscription(ctx, planID, plan.TotalCount, notes)
	if err != nil {
		return nil, err
	}

	subscriptionID, _ := subscription["id"].(string)
	shortURL, _ := subscription["short_url"].(string)

	s.persistPending(ctx, subscriptionID, plan.Amount, model.ContactInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}, req.Notes)

	return &model.CreateSubscriptionResponse{
		SubscriptionID: subscriptionID,
		KeyID:          s.config.Razorpay.KeyID,
		ShortURL:       shortURL,
	}, nil
}

func (s *DefaultCheckoutService) persistPending(ctx context.Context, providerRef string, amount int64, contact model.ContactInfo, notes map[string]string) {
	if providerRef == "" {
		return
	}

	if err := s.userRepo.Upsert(ctx, model.User{
		Name:  contact.Name,
		Email: contact.Email,
		Phone: contact.Phone,
	}); err != nil {
		log.Printf("Failed to upsert user for pending order %s: %v", providerRef, err)
	}

	if err := s.paymentRepo.Create(ctx, &model.Payment{
		Provider:    model.ProviderRazorpay,
		ProviderRef: providerRef,
		Amount:      amount,
		Currency:    "INR",
		Status:      model.PaymentStatusCreated,
		UserName:    contact.Name,
		UserEmail:   contact.Email,
		UserPhone:   contact.Phone,
		Notes:       notesJSON(notes),
	}); err != nil {
		log.Printf("Failed to persist pending payment %s: %v", providerRef, err)
	}
}
