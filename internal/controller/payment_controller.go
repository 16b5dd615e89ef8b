package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NishantGawd/sj-fitness/internal/model"
	"github.com/NishantGawd/sj-fitness/internal/service"
)

type PaymentController struct {
	paymentService service.PaymentService
}

func NewPaymentController(paymentService service.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

func (pc *PaymentController) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/razorpay/verify", pc.VerifyPayment)
}

// VerifyPayment returns {valid:false} with 200 for a signature mismatch;
// only config problems, malformed payloads, or a failed ledger write
// after a valid signature produce an error status.
func (pc *PaymentController) VerifyPayment(c echo.Context) error {
	var req model.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	valid, err := pc.paymentService.VerifyPayment(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingSecret):
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Missing Razorpay secret"})
		case errors.Is(err, service.ErrInvalidVerifyType):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid type"})
		case errors.Is(err, service.ErrMalformedPayload):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Malformed payload"})
		case errors.Is(err, service.ErrLedgerWrite):
			// Signature was valid but the write did not land. The client
			// retries; the write is idempotent per provider reference.
			log.Printf("Ledger write failed after valid signature: %v", err)
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "Failed to record payment"})
		default:
			log.Printf("Verification error: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Verification error"})
		}
	}

	return c.JSON(http.StatusOK, model.VerifyPaymentResponse{Valid: valid})
}
