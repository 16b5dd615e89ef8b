package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NishantGawd/sj-fitness/internal/model"
)

func TestReceiptSubject(t *testing.T) {
	subscription := model.Receipt{PlanName: "6 Month Plan", Mode: "subscription"}
	assert.Equal(t, "Your 6 Month Plan Membership is Active!", ReceiptSubject(subscription))

	oneTime := model.Receipt{PlanName: "Day Pass Pack", Mode: "one-time"}
	assert.Equal(t, "Your Day Pass Pack - One-Time Payment Receipt", ReceiptSubject(oneTime))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "INR 3000.00", FormatAmount(300000))
	assert.Equal(t, "INR 13000.00", FormatAmount(1300000))
	assert.Equal(t, "INR 1.50", FormatAmount(150))
	assert.Equal(t, "INR 0.00", FormatAmount(0))
}

func TestReceiptReference(t *testing.T) {
	assert.Equal(t, "sub_1", receiptReference(model.Receipt{SubscriptionID: "sub_1", OrderID: "order_1", PaymentID: "pay_1"}))
	assert.Equal(t, "order_1", receiptReference(model.Receipt{OrderID: "order_1", PaymentID: "pay_1"}))
	assert.Equal(t, "pay_1", receiptReference(model.Receipt{PaymentID: "pay_1"}))
}

func TestBuildMembershipReceiptHTML(t *testing.T) {
	html := BuildMembershipReceiptHTML(model.Receipt{
		Name:           "A Member",
		PlanName:       "3 Month Plan",
		Amount:         600000,
		SubscriptionID: "sub_123",
		PaymentID:      "pay_456",
		Branch:         "Indiranagar",
	})

	assert.Contains(t, html, "A Member")
	assert.Contains(t, html, "3 Month Plan")
	assert.Contains(t, html, "INR 6000.00")
	assert.Contains(t, html, "sub_123")
	assert.Contains(t, html, "pay_456")
	assert.Contains(t, html, "Indiranagar")
}

func TestBuildOneTimeReceiptHTML(t *testing.T) {
	html := BuildOneTimeReceiptHTML(model.Receipt{
		Name:      "A Member",
		PlanName:  "1 Month Plan",
		Amount:    300000,
		OrderID:   "order_789",
		PaymentID: "pay_456",
	})

	assert.Contains(t, html, "INR 3000.00")
	assert.Contains(t, html, "order_789")
	assert.Contains(t, html, "pay_456")
}

func TestBuildDayPassHTML(t *testing.T) {
	t.Run("with QR", func(t *testing.T) {
		html := BuildDayPassHTML(model.DayPassEmailRequest{
			Name:   "Visitor",
			Branch: "Koramangala",
			Date:   "2026-09-02",
			QRURL:  "https://example.com/qr.png",
		})

		assert.Contains(t, html, "Visitor")
		assert.Contains(t, html, "Koramangala")
		assert.Contains(t, html, "2026-09-02")
		assert.Contains(t, html, `src="https://example.com/qr.png"`)
	})

	t.Run("without QR", func(t *testing.T) {
		html := BuildDayPassHTML(model.DayPassEmailRequest{Name: "Visitor"})
		assert.NotContains(t, html, "<img")
	})
}

func TestBuildReminderHTML(t *testing.T) {
	html := BuildReminderHTML("A Member", 7)

	assert.Contains(t, html, "A Member")
	assert.Contains(t, html, "<b>7</b>")
}
