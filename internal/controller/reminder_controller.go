package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NishantGawd/sj-fitness/internal/razorpay"
	"github.com/NishantGawd/sj-fitness/internal/service"
)

// ReminderController exposes the renewal-reminder sweep, intended to be
// hit by an external cron scheduler.
type ReminderController struct {
	reminderService service.ReminderService
}

func NewReminderController(reminderService service.ReminderService) *ReminderController {
	return &ReminderController{
		reminderService: reminderService,
	}
}

func (rc *ReminderController) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/cron/reminders", rc.SendReminders)
}

func (rc *ReminderController) SendReminders(c echo.Context) error {
	sent, err := rc.reminderService.SendRenewalReminders(c.Request().Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Missing Razorpay credentials"})
		case errors.Is(err, service.ErrMailerNotConfigured):
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Missing email config"})
		case errors.Is(err, razorpay.ErrSubscriptionListFailed):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			log.Printf("Reminder sweep error: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Cron error"})
		}
	}

	return c.JSON(http.StatusOK, map[string]int{"sent": sent})
}
