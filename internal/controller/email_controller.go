package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NishantGawd/sj-fitness/internal/mailer"
	"github.com/NishantGawd/sj-fitness/internal/model"
	"github.com/NishantGawd/sj-fitness/internal/service"
)

// EmailController exposes the receipt-email endpoints the checkout page
// calls after a successful payment. They only send mail; entitlement
// state is never touched here.
type EmailController struct {
	mailer service.Mailer
}

func NewEmailController(m service.Mailer) *EmailController {
	return &EmailController{
		mailer: m,
	}
}

func (ec *EmailController) RegisterRoutes(e *echo.Echo) {
	emails := e.Group("/api/email")

	emails.POST("/membership", ec.SendMembershipReceipt)
	emails.POST("/one-time", ec.SendOneTimeReceipt)
	emails.POST("/day-pass", ec.SendDayPass)
}

func (ec *EmailController) SendMembershipReceipt(c echo.Context) error {
	var receipt model.Receipt
	if err := c.Bind(&receipt); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if receipt.Email == "" || receipt.Name == "" || receipt.PlanName == "" ||
		receipt.Amount == 0 || receipt.SubscriptionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields for membership email"})
	}

	if receipt.Mode == "" {
		receipt.Mode = "subscription"
	}

	return ec.sendReceipt(c, receipt)
}

func (ec *EmailController) SendOneTimeReceipt(c echo.Context) error {
	var receipt model.Receipt
	if err := c.Bind(&receipt); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if receipt.Email == "" || receipt.Name == "" || receipt.PlanID == "" ||
		receipt.PlanName == "" || receipt.Amount == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing required fields"})
	}

	if receipt.Mode == "" {
		receipt.Mode = "one-time"
	}

	return ec.sendReceipt(c, receipt)
}

func (ec *EmailController) sendReceipt(c echo.Context, receipt model.Receipt) error {
	id, err := ec.mailer.SendReceipt(c.Request().Context(), receipt)
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Email service is not configured"})
		}
		log.Printf("Failed to send receipt email to %s: %v", receipt.Email, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":  "Failed to send email",
			"detail": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true, "id": id})
}

func (ec *EmailController) SendDayPass(c echo.Context) error {
	var req model.DayPassEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if req.Email == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing name or email"})
	}

	id, err := ec.mailer.SendDayPass(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Email service is not configured"})
		}
		log.Printf("Failed to send day-pass email to %s: %v", req.Email, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error":  "Failed to send email",
			"detail": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"ok": true, "id": id})
}
