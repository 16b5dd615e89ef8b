package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/NishantGawd/sj-fitness/internal/model"
	"github.com/NishantGawd/sj-fitness/internal/razorpay"
	"github.com/NishantGawd/sj-fitness/internal/repository"
)

var (
	ErrMissingSecret           = errors.New("missing razorpay secret")
	ErrInvalidVerifyType       = errors.New("type must be 'order' or 'subscription'")
	ErrMalformedPayload        = errors.New("malformed payload")
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	ErrLedgerWrite             = errors.New("failed to record payment")
)

// Mailer is the notification surface the services need. Satisfied by
// mailer.Mailer. Failures here never roll back ledger writes.
type Mailer interface {
	SendReceipt(ctx context.Context, receipt model.Receipt) (string, error)
	SendDayPass(ctx context.Context, req model.DayPassEmailRequest) (string, error)
	SendReminder(ctx context.Context, email, name, duration string, daysLeft int) (string, error)
}

type PaymentService interface {
	VerifyPayment(ctx context.Context, req *model.VerifyPaymentRequest) (bool, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type DefaultPaymentService struct {
	keySecret     string
	webhookSecret string
	ledgerRepo    repository.LedgerRepository
	paymentRepo   repository.PaymentRepository
	mailer        Mailer
}

func NewPaymentService(
	keySecret string,
	webhookSecret string,
	ledgerRepo repository.LedgerRepository,
	paymentRepo repository.PaymentRepository,
	mailer Mailer,
) PaymentService {
	return &DefaultPaymentService{
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
		ledgerRepo:    ledgerRepo,
		paymentRepo:   paymentRepo,
		mailer:        mailer,
	}
}

// VerifyPayment recomputes the provider's HMAC and, when it matches,
// records the completion. A mismatch is a normal negative result: the
// returned bool is false and the error is nil.
func (s *DefaultPaymentService) VerifyPayment(ctx context.Context, req *model.VerifyPaymentRequest) (bool, error) {
	if s.keySecret == "" {
		return false, ErrMissingSecret
	}

	p := req.Payload

	var canonical, ref string
	switch req.Type {
	case "order":
		if p.RazorpayOrderID == "" || p.RazorpayPaymentID == "" || p.RazorpaySignature == "" {
			return false, ErrMalformedPayload
		}
		canonical = p.RazorpayOrderID + "|" + p.RazorpayPaymentID
		ref = p.RazorpayOrderID
	case "subscription":
		if p.RazorpaySubscriptionID == "" || p.RazorpayPaymentID == "" || p.RazorpaySignature == "" {
			return false, ErrMalformedPayload
		}
		// The provider signs payment_id|subscription_id for subscriptions,
		// the reverse of the order flow. Dictated by the provider contract.
		canonical = p.RazorpayPaymentID + "|" + p.RazorpaySubscriptionID
		ref = p.RazorpaySubscriptionID
	default:
		return false, ErrInvalidVerifyType
	}

	if !razorpay.VerifySignature(s.keySecret, canonical, p.RazorpaySignature) {
		log.Printf("Signature mismatch for %s %s", req.Type, ref)
		return false, nil
	}

	if p.UserEmail != "" && p.PlanName != "" && p.PlanID != "" {
		if err := s.activateMembership(ctx, ref, p); err != nil {
			return true, fmt.Errorf("%w: %v", ErrLedgerWrite, err)
		}
		return true, nil
	}

	// No customer metadata: mark the snapshotted payment paid and stop.
	if err := s.paymentRepo.UpdateStatus(ctx, model.ProviderRazorpay, ref, model.PaymentStatusPaid); err != nil {
		return true, fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}
	return true, nil
}

func (s *DefaultPaymentService) activateMembership(ctx context.Context, ref string, p model.VerifyPayload) error {
	startedAt := time.Now()
	endsAt, err := EndsAt(startedAt, p.PlanID)
	if err != nil {
		return err
	}

	user := model.User{
		Name:  p.UserName,
		Email: p.UserEmail,
	}

	payment := model.Payment{
		Provider:    model.ProviderRazorpay,
		ProviderRef: ref,
		Currency:    "INR",
		Status:      model.PaymentStatusPaid,
		UserName:    p.UserName,
		UserEmail:   p.UserEmail,
	}

	membership := model.Membership{
		UserEmail: p.UserEmail,
		Plan:      p.PlanName,
		Status:    model.MembershipStatusActive,
		StartedAt: startedAt,
		EndsAt:    toNullTime(endsAt),
		Provider:  model.ProviderRazorpay,
	}

	paymentID, err := s.ledgerRepo.RecordPaid(ctx, user, payment, membership)
	if err != nil {
		return err
	}

	log.Printf("Recorded paid completion %s as payment %s, membership active until %s",
		ref, paymentID, endsAt.Format(time.RFC3339))
	return nil
}

// HandleWebhook verifies the header signature over the raw body before
// trusting anything in it, then processes order.paid events idempotently.
func (s *DefaultPaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.webhookSecret == "" || signature == "" {
		return ErrMissingSecret
	}

	if !razorpay.VerifySignature(s.webhookSecret, string(payload), signature) {
		log.Println("Webhook signature verification failed")
		return ErrInvalidWebhookSignature
	}

	var event map[string]interface{}
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	eventType, ok := event["event"].(string)
	if !ok {
		return fmt.Errorf("%w: missing event type", ErrMalformedPayload)
	}

	log.Printf("Received Razorpay webhook event: %s", eventType)

	switch eventType {
	case "order.paid":
		return s.handleOrderPaid(ctx, event)
	default:
		log.Printf("Unhandled webhook event type: %s", eventType)
		return nil
	}
}

func (s *DefaultPaymentService) handleOrderPaid(ctx context.Context, event map[string]interface{}) error {
	payloadObj, _ := event["payload"].(map[string]interface{})
	if payloadObj == nil {
		return fmt.Errorf("%w: invalid payload in webhook event", ErrMalformedPayload)
	}

	orderEntity := entityOf(payloadObj, "order")
	paymentEntity := entityOf(payloadObj, "payment")
	if orderEntity == nil || paymentEntity == nil {
		return fmt.Errorf("%w: missing order or payment entity", ErrMalformedPayload)
	}

	notes, _ := orderEntity["notes"].(map[string]interface{})
	email := stringField(notes, "email")
	name := stringField(notes, "name")
	plan := stringField(notes, "plan")
	duration := stringField(notes, "duration")

	if email == "" || plan == "" {
		return fmt.Errorf("%w: email or plan missing in order notes", ErrMalformedPayload)
	}
	if _, err := PlanFor(duration); err != nil {
		duration = "1m"
	}

	paymentID := stringField(paymentEntity, "id")
	if paymentID == "" {
		return fmt.Errorf("%w: missing payment id", ErrMalformedPayload)
	}
	phone := stringField(paymentEntity, "contact")
	currency := stringField(paymentEntity, "currency")
	if currency == "" {
		currency = "INR"
	}
	amount, _ := paymentEntity["amount"].(float64)

	startedAt := time.Now()
	endsAt, err := EndsAt(startedAt, duration)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	user := model.User{
		Name:  name,
		Email: email,
		Phone: phone,
	}

	payment := model.Payment{
		Provider:    model.ProviderRazorpay,
		ProviderRef: paymentID,
		Amount:      int64(amount),
		Currency:    currency,
		Status:      model.PaymentStatusPaid,
		UserName:    name,
		UserEmail:   email,
		UserPhone:   phone,
	}

	membership := model.Membership{
		UserEmail: email,
		Plan:      plan,
		Status:    model.MembershipStatusActive,
		StartedAt: startedAt,
		EndsAt:    toNullTime(endsAt),
		Provider:  model.ProviderRazorpay,
	}

	recordedID, err := s.ledgerRepo.RecordPaid(ctx, user, payment, membership)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerWrite, err)
	}

	log.Printf("Webhook order.paid recorded: payment %s (%s)", recordedID, paymentID)

	// Receipt is best-effort: a mail failure never undoes the ledger write.
	if s.mailer != nil {
		_, mailErr := s.mailer.SendReceipt(ctx, model.Receipt{
			Name:      name,
			Email:     email,
			PlanID:    duration,
			PlanName:  plan,
			Amount:    int64(amount),
			OrderID:   stringField(orderEntity, "id"),
			PaymentID: paymentID,
			Mode:      "one-time",
		})
		if mailErr != nil {
			log.Printf("Failed to send receipt for payment %s: %v", paymentID, mailErr)
		}
	}

	return nil
}

func entityOf(payload map[string]interface{}, key string) map[string]interface{} {
	obj, _ := payload[key].(map[string]interface{})
	if obj == nil {
		return nil
	}
	entity, _ := obj["entity"].(map[string]interface{})
	return entity
}

func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
