package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NishantGawd/sj-fitness/internal/model"
	"github.com/NishantGawd/sj-fitness/internal/razorpay"
	"github.com/NishantGawd/sj-fitness/internal/service"
)

type CheckoutController struct {
	checkoutService service.CheckoutService
}

func NewCheckoutController(checkoutService service.CheckoutService) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
	}
}

func (cc *CheckoutController) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/razorpay/order", cc.CreateOrder)
	e.POST("/api/razorpay/subscription", cc.CreateSubscription)
}

func (cc *CheckoutController) CreateOrder(c echo.Context) error {
	var req model.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	res, err := cc.checkoutService.CreateOrder(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Missing Razorpay credentials"})
		case errors.Is(err, service.ErrInvalidAmount):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid amount"})
		case errors.Is(err, razorpay.ErrOrderCreationFailed):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			log.Printf("Error creating order: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create order"})
		}
	}

	return c.JSON(http.StatusOK, res)
}

func (cc *CheckoutController) CreateSubscription(c echo.Context) error {
	var req model.CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	res, err := cc.checkoutService.CreateSubscription(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Missing Razorpay credentials"})
		case errors.Is(err, service.ErrInvalidDuration):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid duration"})
		case errors.Is(err, razorpay.ErrPlanCreationFailed),
			errors.Is(err, razorpay.ErrSubscriptionCreationFailed):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		default:
			log.Printf("Error creating subscription: %v", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create subscription"})
		}
	}

	return c.JSON(http.StatusOK, res)
}
