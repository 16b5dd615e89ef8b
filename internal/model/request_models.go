package model

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CreateOrderRequest struct {
	Amount int64             `json:"amount"` // paise
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Phone  string            `json:"phone"`
	Notes  map[string]string `json:"notes"`
}

type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
	KeyID   string `json:"keyId"`
}

type CreateSubscriptionRequest struct {
	Duration string            `json:"duration"` // 1m, 3m, 6m, 12m
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone"`
	Notes    map[string]string `json:"notes"`
}

type CreateSubscriptionResponse struct {
	SubscriptionID string `json:"subscriptionId"`
	KeyID          string `json:"keyId"`
	ShortURL       string `json:"shortUrl"`
}

// VerifyPaymentRequest carries a claimed checkout completion. Type is
// "order" or "subscription"; the provider ids and signature come from the
// checkout callback verbatim.
type VerifyPaymentRequest struct {
	Type    string        `json:"type"`
	Payload VerifyPayload `json:"payload"`
}

type VerifyPayload struct {
	RazorpayOrderID        string `json:"razorpay_order_id"`
	RazorpayPaymentID      string `json:"razorpay_payment_id"`
	RazorpaySubscriptionID string `json:"razorpay_subscription_id"`
	RazorpaySignature      string `json:"razorpay_signature"`

	UserEmail string `json:"userEmail"`
	UserName  string `json:"userName"`
	PlanName  string `json:"planName"`
	PlanID    string `json:"planId"`
}

type VerifyPaymentResponse struct {
	Valid bool `json:"valid"`
}

type TrialRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Receipt holds everything the receipt templates need. Mode is
// "one-time" or "subscription" and drives the subject line.
type Receipt struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	PlanID         string `json:"planId"`
	PlanName       string `json:"planName"`
	Amount         int64  `json:"amount"` // paise
	Branch         string `json:"branch"`
	OrderID        string `json:"orderId"`
	PaymentID      string `json:"paymentId"`
	SubscriptionID string `json:"subscriptionId"`
	Mode           string `json:"mode"`
}

type DayPassEmailRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Branch string `json:"branch"`
	Date   string `json:"date"`
	QRURL  string `json:"qrUrl"`
}
