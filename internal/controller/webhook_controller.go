package controller

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NishantGawd/sj-fitness/internal/service"
)

type WebhookController struct {
	paymentService service.PaymentService
}

func NewWebhookController(paymentService service.PaymentService) *WebhookController {
	return &WebhookController{
		paymentService: paymentService,
	}
}

func (wc *WebhookController) RegisterRoutes(e *echo.Echo) {
	e.POST("/webhooks/razorpay", wc.HandleRazorpayWebhook)
}

func (wc *WebhookController) HandleRazorpayWebhook(c echo.Context) error {
	// The signature covers the raw body byte-for-byte, so it must be read
	// before any parsing.
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to read request body"})
	}

	signature := c.Request().Header.Get("X-Razorpay-Signature")
	if signature == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing Razorpay signature"})
	}

	if err := wc.paymentService.HandleWebhook(c.Request().Context(), body, signature); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingSecret):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing secret or signature"})
		case errors.Is(err, service.ErrInvalidWebhookSignature):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized: Invalid signature"})
		case errors.Is(err, service.ErrMalformedPayload):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			log.Printf("Webhook error: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to process webhook"})
		}
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
