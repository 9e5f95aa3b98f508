package controllers

import (
	"net/http"
	"strconv"

	"github.com/YT-Kowshick/Women-Safety-Ai/internal/services"
	"github.com/labstack/echo/v4"
)

// LeaderboardController exposes the state ranking route.
type LeaderboardController struct {
	svc services.LeaderboardService
}

func NewLeaderboardController(svc services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{svc: svc}
}

func (ctr *LeaderboardController) Register(g *echo.Group) {
	g.GET("/leaderboard", ctr.GetLeaderboard)
}

// GetLeaderboard handles GET /leaderboard[?year=]: all known states ranked
// ascending by safety score, optionally restricted to a single year.
func (ctr *LeaderboardController) GetLeaderboard(c echo.Context) error {
	var year *int
	if raw := c.QueryParam("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, detail("query parameter 'year' must be an integer"))
		}
		year = &v
	}

	entries, err := ctr.svc.Rank(c.Request().Context(), year)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, entries)
}
