package controller

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NishantGawd/sj-fitness/internal/repository"
)

// MembershipController serves the current-entitlement lookup used by the
// cancellation and support flows.
type MembershipController struct {
	membershipRepo repository.MembershipRepository
}

func NewMembershipController(membershipRepo repository.MembershipRepository) *MembershipController {
	return &MembershipController{
		membershipRepo: membershipRepo,
	}
}

func (mc *MembershipController) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/membership", mc.GetCurrent)
}

func (mc *MembershipController) GetCurrent(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email is required"})
	}

	membership, err := mc.membershipRepo.GetCurrentByEmail(c.Request().Context(), email)
	if err != nil {
		log.Printf("Error looking up membership for %s: %v", email, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve membership"})
	}

	if membership == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "No active membership found"})
	}

	return c.JSON(http.StatusOK, membership)
}
