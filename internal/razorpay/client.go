package razorpay

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/razorpay/razorpay-go"
)

var (
	ErrOrderCreationFailed        = errors.New("failed to create order")
	ErrPlanCreationFailed         = errors.New("failed to create plan")
	ErrSubscriptionCreationFailed = errors.New("failed to create subscription")
	ErrSubscriptionListFailed     = errors.New("failed to list subscriptions")
)

type Client struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

type Config struct {
	KeyID     string
	KeySecret string
}

func NewClient(config Config) *Client {
	if config.KeyID == "" {
		log.Println("WARNING: Razorpay Key ID is empty!")
	}
	if config.KeySecret == "" {
		log.Println("WARNING: Razorpay Key Secret is empty!")
	}

	return &Client{
		client:    razorpay.NewClient(config.KeyID, config.KeySecret),
		keyID:     config.KeyID,
		keySecret: config.KeySecret,
	}
}

func (c *Client) KeyID() string {
	return c.keyID
}

func (c *Client) CreateOrder(ctx context.Context, amount int64, currency string, receiptID string, notes map[string]interface{}) (map[string]interface{}, error) {
	log.Printf("Creating Razorpay order: Amount %d %s, Receipt ID: %s",
		amount, currency, receiptID)

	data := map[string]interface{}{
		"amount":   amount, // smallest currency unit (paise)
		"currency": currency,
		"receipt":  receiptID,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	order, err := c.client.Order.Create(data, nil)
	if err != nil {
		log.Printf("Failed to create Razorpay order: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	log.Printf("Successfully created Razorpay order: ID %s", order["id"])
	return order, nil
}

func (c *Client) CreatePlan(ctx context.Context, period string, interval int, name string, amount int64, notes map[string]interface{}) (map[string]interface{}, error) {
	log.Printf("Creating Razorpay plan: %s, %d paise per %d %s", name, amount, interval, period)

	data := map[string]interface{}{
		"period":   period,
		"interval": interval,
		"item": map[string]interface{}{
			"name":     name,
			"amount":   amount,
			"currency": "INR",
		},
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	plan, err := c.client.Plan.Create(data, nil)
	if err != nil {
		log.Printf("Failed to create Razorpay plan: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPlanCreationFailed, err)
	}

	log.Printf("Successfully created Razorpay plan: ID %s", plan["id"])
	return plan, nil
}

func (c *Client) CreateSubscription(ctx context.Context, planID string, totalCount int, notes map[string]interface{}) (map[string]interface{}, error) {
	log.Printf("Creating Razorpay subscription: Plan ID %s, Total count %d", planID, totalCount)

	data := map[string]interface{}{
		"plan_id":         planID,
		"total_count":     totalCount,
		"customer_notify": 1,
	}
	if len(notes) > 0 {
		data["notes"] = notes
	}

	subscription, err := c.client.Subscription.Create(data, nil)
	if err != nil {
		log.Printf("Failed to create Razorpay subscription: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSubscriptionCreationFailed, err)
	}

	log.Printf("Successfully created Razorpay subscription: ID %s", subscription["id"])
	return subscription, nil
}

func (c *Client) ListSubscriptions(ctx context.Context, count int) ([]map[string]interface{}, error) {
	res, err := c.client.Subscription.All(map[string]interface{}{
		"count": count,
	}, nil)
	if err != nil {
		log.Printf("Failed to list Razorpay subscriptions: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSubscriptionListFailed, err)
	}

	rawItems, _ := res["items"].([]interface{})
	items := make([]map[string]interface{}, 0, len(rawItems))
	for _, raw := range rawItems {
		if item, ok := raw.(map[string]interface{}); ok {
			items = append(items, item)
		}
	}
	return items, nil
}
