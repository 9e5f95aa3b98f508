package controllers

import (
	"net/http"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/models"
	"github.com/YT-Kowshick/Women-Safety-Ai/internal/services"
	"github.com/labstack/echo/v4"
)

// PredictController groups the safety prediction routes.
type PredictController struct {
	// svc computes safety scores from the reference data or from
	// caller-supplied what-if counts.
	svc services.ScoreService
}

// NewPredictController is the factory that receives a ScoreService
// implementation and returns a configured controller.
func NewPredictController(svc services.ScoreService) *PredictController {
	return &PredictController{svc: svc}
}

// Register binds the prediction routes onto the given group.
func (ctr *PredictController) Register(g *echo.Group) {
	g.POST("/predict/safety", ctr.PredictSafety)
	g.POST("/predict/simulate", ctr.Simulate)
}

// PredictSafety handles POST /predict/safety: looks up the (state, year)
// record and returns its safety score and risk level.
func (ctr *PredictController) PredictSafety(c echo.Context) error {
	req := new(models.SafetyRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, detail("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return respondError(c, err)
	}

	result, err := ctr.svc.PredictSafety(c.Request().Context(), req.State, req.Year)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.SafetyResponse{
		State:       req.State,
		Year:        req.Year,
		SafetyScore: result.Score,
		RiskLevel:   result.RiskLevel,
	})
}

// Simulate handles POST /predict/simulate: scores an arbitrary crime count
// vector for what-if analysis.
func (ctr *PredictController) Simulate(c echo.Context) error {
	req := new(models.SimulateRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, detail("invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return respondError(c, err)
	}

	result, err := ctr.svc.Simulate(c.Request().Context(), req.Counts())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.SimulateResponse{
		SafetyScore: result.Score,
		RiskLevel:   result.RiskLevel,
	})
}
