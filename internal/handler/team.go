package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/service"
)

type TeamHandler struct {
	Schedule *service.ScheduleService
	Rankings *service.RankingsService
	Logger   *zap.Logger
}

func (h *TeamHandler) Register(r *gin.Engine) {
	group := r.Group("/api/teams")
	group.GET("/:teamId/schedule-strength/:kind", h.getScheduleStrength)
	group.GET("/:teamId/stats/:kind", h.getTeamStats)
	group.GET("/:teamId/probable-pitchers", h.getProbablePitchers)
	group.GET("/:teamId/two-start", h.getTwoStartPitchers)
}

// @Summary Week schedule-strength outlook for a fantasy roster
// @Tags teams
// @Param teamId path int true "fantasy team id"
// @Param kind path string true "batting|pitching"
// @Param start query string false "window start (YYYY-MM-DD, defaults to current week)"
// @Param end query string false "window end (YYYY-MM-DD)"
// @Param days query int false "rolling window for opponent percentiles"
// @Success 200 {object} apiResponse
// @Router /api/teams/{teamId}/schedule-strength/{kind} [get]
func (h *TeamHandler) getScheduleStrength(c *gin.Context) {
	if h.Schedule == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	out, err := h.Schedule.GetScheduleStrength(c.Request.Context(), service.ScheduleParams{
		TeamID:   uint64Param(c, "teamId"),
		Start:    dateQuery(c, "start"),
		End:      dateQuery(c, "end"),
		SpanDays: intQuery(c, "days", 0),
		Kind:     c.Param("kind"),
	})
	if err != nil {
		writeServiceError(c, h.Logger, "schedule strength", err)
		return
	}
	Ok(c, out, nil)
}

// @Summary Composite-ordered roster stats for one fantasy team
// @Tags teams
// @Param teamId path int true "fantasy team id"
// @Param kind path string true "batters|pitchers"
// @Param days query int false "rolling window in days"
// @Success 200 {object} apiResponse
// @Router /api/teams/{teamId}/stats/{kind} [get]
func (h *TeamHandler) getTeamStats(c *gin.Context) {
	if h.Rankings == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	players, err := h.Rankings.GetTeamStats(c.Request.Context(), uint64Param(c, "teamId"), c.Param("kind"), intQuery(c, "days", 0))
	if err != nil {
		writeServiceError(c, h.Logger, "team stats", err)
		return
	}
	Ok(c, players, nil)
}

// @Summary Scored probable starts for a fantasy team's rostered pitchers
// @Tags teams
// @Param teamId path int true "fantasy team id"
// @Param start query string false "window start (YYYY-MM-DD, defaults to current week)"
// @Param end query string false "window end (YYYY-MM-DD)"
// @Param days query int false "rolling window for opponent percentiles"
// @Success 200 {object} apiResponse
// @Router /api/teams/{teamId}/probable-pitchers [get]
func (h *TeamHandler) getProbablePitchers(c *gin.Context) {
	if h.Schedule == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	starts, err := h.Schedule.GetTeamProbablePitchers(c.Request.Context(), service.ScheduleParams{
		TeamID:   uint64Param(c, "teamId"),
		Start:    dateQuery(c, "start"),
		End:      dateQuery(c, "end"),
		SpanDays: intQuery(c, "days", 0),
	})
	if err != nil {
		writeServiceError(c, h.Logger, "probable pitchers", err)
		return
	}
	Ok(c, starts, nil)
}

// @Summary Rostered pitchers with two or more probable starts in the window
// @Tags teams
// @Param teamId path int true "fantasy team id"
// @Param start query string false "window start (YYYY-MM-DD, defaults to current week)"
// @Param end query string false "window end (YYYY-MM-DD)"
// @Param days query int false "rolling window for opponent percentiles"
// @Success 200 {object} apiResponse
// @Router /api/teams/{teamId}/two-start [get]
func (h *TeamHandler) getTwoStartPitchers(c *gin.Context) {
	if h.Schedule == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	weeks, err := h.Schedule.GetTeamTwoStartPitchers(c.Request.Context(), service.ScheduleParams{
		TeamID:   uint64Param(c, "teamId"),
		Start:    dateQuery(c, "start"),
		End:      dateQuery(c, "end"),
		SpanDays: intQuery(c, "days", 0),
	})
	if err != nil {
		writeServiceError(c, h.Logger, "team two-start", err)
		return
	}
	Ok(c, weeks, nil)
}
