package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/usecase/dashboard"
)

type DashboardHandler struct {
	dashboardUseCase *dashboard.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *dashboard.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// Stats returns the user's activity totals and chart series
// @Summary Activity stats
// @Description Step and distance totals over the selected window
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param range query string false "day, week or month" default(week)
// @Success 200 {object} domain.ActivityTotals
// @Failure 401 {object} ErrorResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	timeRange := domain.TimeRange(c.DefaultQuery("range", "week"))

	totals, err := h.dashboardUseCase.LoadTotals(c.Request.Context(), userID, timeRange)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// Leaderboard returns the step ranking for the selected window
// @Summary Step leaderboard
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Param range query string false "day, week or month" default(week)
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 401 {object} ErrorResponse
// @Router /dashboard/leaderboard [get]
func (h *DashboardHandler) Leaderboard(c *gin.Context) {
	if _, ok := mustUserID(c); !ok {
		return
	}

	timeRange := domain.TimeRange(c.DefaultQuery("range", "week"))

	entries, err := h.dashboardUseCase.LoadLeaderboard(c.Request.Context(), timeRange)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
