package mailer

import (
	"fmt"

	"github.com/NishantGawd/sj-fitness/internal/model"
)

// ReceiptSubject derives the subject line from plan name and payment mode.
func ReceiptSubject(receipt model.Receipt) string {
	if receipt.Mode == "subscription" {
		return fmt.Sprintf("Your %s Membership is Active!", receipt.PlanName)
	}
	return fmt.Sprintf("Your %s - One-Time Payment Receipt", receipt.PlanName)
}

// FormatAmount renders a paise amount as rupees.
func FormatAmount(paise int64) string {
	return fmt.Sprintf("INR %.2f", float64(paise)/100)
}

func receiptReference(receipt model.Receipt) string {
	if receipt.SubscriptionID != "" {
		return receipt.SubscriptionID
	}
	if receipt.OrderID != "" {
		return receipt.OrderID
	}
	return receipt.PaymentID
}

func BuildMembershipReceiptHTML(receipt model.Receipt) string {
	return fmt.Sprintf(`
		<h2>Welcome to SJ Fitness!</h2>
		<p>Hi %s,</p>
		<p>Your <b>%s</b> membership is now active.</p>
		<table>
			<tr><td>Plan</td><td>%s</td></tr>
			<tr><td>Amount</td><td>%s</td></tr>
			<tr><td>Subscription ID</td><td>%s</td></tr>
			<tr><td>Payment ID</td><td>%s</td></tr>
			<tr><td>Branch</td><td>%s</td></tr>
		</table>
		<p>See you at the gym!</p>
		<p>Team SJ Fitness</p>
	`, receipt.Name, receipt.PlanName, receipt.PlanName, FormatAmount(receipt.Amount),
		receipt.SubscriptionID, receipt.PaymentID, receipt.Branch)
}

func BuildOneTimeReceiptHTML(receipt model.Receipt) string {
	return fmt.Sprintf(`
		<h2>Payment received</h2>
		<p>Hi %s,</p>
		<p>Thanks for your payment of <b>%s</b> for %s.</p>
		<table>
			<tr><td>Order ID</td><td>%s</td></tr>
			<tr><td>Payment ID</td><td>%s</td></tr>
			<tr><td>Branch</td><td>%s</td></tr>
		</table>
		<p>Team SJ Fitness</p>
	`, receipt.Name, FormatAmount(receipt.Amount), receipt.PlanName,
		receipt.OrderID, receipt.PaymentID, receipt.Branch)
}

func BuildDayPassHTML(req model.DayPassEmailRequest) string {
	qr := ""
	if req.QRURL != "" {
		qr = fmt.Sprintf(`<p><img src="%s" alt="pass QR" width="160" height="160"/></p>`, req.QRURL)
	}
	return fmt.Sprintf(`
		<h2>Your free 1-day pass</h2>
		<p>Hi %s,</p>
		<p>Your pass for <b>%s</b> is valid on %s. Show this email at the front desk.</p>
		%s
		<p>Team SJ Fitness</p>
	`, req.Name, req.Branch, req.Date, qr)
}

func BuildReminderHTML(name string, daysLeft int) string {
	return fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>This is a reminder that your membership ends in <b>%d</b> days.</p>
		<p>Please renew to avoid interruption.</p>
		<p>Best,<br/>Team SJ Fitness</p>
	`, name, daysLeft)
}
