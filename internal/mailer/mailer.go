package mailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"

	"github.com/NishantGawd/sj-fitness/internal/model"
)

var ErrNotConfigured = errors.New("mailer disabled (missing MAILERSEND_API_KEY or MAILER_FROM_EMAIL)")

type Mailer struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	Enabled bool
}

func NewMailer(apiKey, fromName, fromEmail string) *Mailer {
	m := &Mailer{
		Enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}
	if m.Enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}
	return m
}

func (m *Mailer) send(ctx context.Context, toEmail, toName, subject, text, html string) (string, error) {
	if !m.Enabled {
		return "", ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)
	if strings.TrimSpace(text) != "" {
		msg.SetText(text)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(res.Body)
		return "", fmt.Errorf("mailersend error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	return res.Header.Get("X-Message-Id"), nil
}

// SendReceipt mails a payment receipt, subject and body chosen by the
// receipt's mode.
func (m *Mailer) SendReceipt(ctx context.Context, receipt model.Receipt) (string, error) {
	subject := ReceiptSubject(receipt)

	var html string
	if receipt.Mode == "subscription" {
		html = BuildMembershipReceiptHTML(receipt)
	} else {
		html = BuildOneTimeReceiptHTML(receipt)
	}

	text := fmt.Sprintf("Hi %s, your payment of %s for %s was received. Reference: %s",
		receipt.Name, FormatAmount(receipt.Amount), receipt.PlanName, receiptReference(receipt))

	return m.send(ctx, receipt.Email, receipt.Name, subject, text, html)
}

func (m *Mailer) SendDayPass(ctx context.Context, req model.DayPassEmailRequest) (string, error) {
	subject := "Your Free 1-Day Pass - SJ Fitness"
	html := BuildDayPassHTML(req)
	text := fmt.Sprintf("Hi %s, your free 1-day pass is ready. Show this email at the front desk.", req.Name)

	return m.send(ctx, req.Email, req.Name, subject, text, html)
}

func (m *Mailer) SendReminder(ctx context.Context, email, name, duration string, daysLeft int) (string, error) {
	subject := fmt.Sprintf("Your %s membership ends in %d days", duration, daysLeft)
	html := BuildReminderHTML(name, daysLeft)
	text := fmt.Sprintf("Hi %s, your membership ends in %d days. Please renew to avoid interruption.", name, daysLeft)

	return m.send(ctx, email, name, subject, text, html)
}
