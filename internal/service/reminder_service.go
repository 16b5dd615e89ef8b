package service

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"github.com/NishantGawd/sj-fitness/internal/config"
)

var ErrMailerNotConfigured = errors.New("email service is not configured")

// Reminder windows in whole days before a subscription's end date.
var reminderDays = []int{10, 7}

type ReminderService interface {
	SendRenewalReminders(ctx context.Context) (int, error)
}

type DefaultReminderService struct {
	gateway PaymentGateway
	mailer  Mailer
	config  *config.Config
}

func NewReminderService(gateway PaymentGateway, mailer Mailer, config *config.Config) ReminderService {
	return &DefaultReminderService{
		gateway: gateway,
		mailer:  mailer,
		config:  config,
	}
}

// SendRenewalReminders sweeps the provider's subscription list and mails
// members whose membership ends in exactly 10 or 7 days. Returns how many
// reminders went out; individual send failures are logged and skipped.
func (s *DefaultReminderService) SendRenewalReminders(ctx context.Context) (int, error) {
	if s.config.Razorpay.KeyID == "" || s.config.Razorpay.KeySecret == "" {
		return 0, ErrMissingCredentials
	}
	if s.config.Email.APIKey == "" || s.config.Email.FromEmail == "" {
		return 0, ErrMailerNotConfigured
	}

	subscriptions, err := s.gateway.ListSubscriptions(ctx, 100)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	sent := 0

	for _, sub := range subscriptions {
		notes, _ := sub["notes"].(map[string]interface{})
		email := stringField(notes, "email")
		name := stringField(notes, "name")
		if name == "" {
			name = "Member"
		}
		duration := stringField(notes, "duration")

		endSec, ok := sub["end_at"].(float64)
		if !ok || endSec == 0 {
			endSec, _ = sub["current_end"].(float64)
		}
		if email == "" || endSec == 0 {
			continue
		}

		endsAt := time.Unix(int64(endSec), 0)
		daysLeft := int(math.Floor(endsAt.Sub(now).Hours() / 24))

		if !isReminderDay(daysLeft) {
			continue
		}

		if _, err := s.mailer.SendReminder(ctx, email, name, duration, daysLeft); err != nil {
			log.Printf("Failed to send renewal reminder to %s: %v", email, err)
			continue
		}
		sent++
	}

	return sent, nil
}

func isReminderDay(daysLeft int) bool {
	for _, d := range reminderDays {
		if daysLeft == d {
			return true
		}
	}
	return false
}
