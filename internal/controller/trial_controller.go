package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/NishantGawd/sj-fitness/internal/model"
	"github.com/NishantGawd/sj-fitness/internal/service"
)

type TrialController struct {
	trialService service.TrialService
}

func NewTrialController(trialService service.TrialService) *TrialController {
	return &TrialController{
		trialService: trialService,
	}
}

func (tc *TrialController) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/trial", tc.IssueTrial)
}

func (tc *TrialController) IssueTrial(c echo.Context) error {
	var req model.TrialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	pass, err := tc.trialService.IssueTrial(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrContactRequired) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email or phone required"})
		}
		log.Printf("Error issuing trial: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error issuing trial"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":    true,
		"trial": pass,
	})
}
