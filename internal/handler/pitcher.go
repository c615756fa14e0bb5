package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/service"
)

type PitcherHandler struct {
	Streaming *service.StreamingService
	Logger    *zap.Logger
}

func (h *PitcherHandler) Register(r *gin.Engine) {
	group := r.Group("/api/pitchers")
	group.GET("/two-start", h.getTwoStart)
	group.GET("/daily-streamers", h.getDailyStreamers)
	group.GET("/nrfi", h.getNRFI)
}

// @Summary Free agents with two or more probable starts in the window
// @Tags pitchers
// @Param start query string false "window start (YYYY-MM-DD, defaults to current week)"
// @Param end query string false "window end (YYYY-MM-DD)"
// @Success 200 {object} apiResponse
// @Router /api/pitchers/two-start [get]
func (h *PitcherHandler) getTwoStart(c *gin.Context) {
	if h.Streaming == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	out, err := h.Streaming.GetTwoStartCandidates(c.Request.Context(), dateQuery(c, "start"), dateQuery(c, "end"))
	if err != nil {
		writeServiceError(c, h.Logger, "two-start", err)
		return
	}
	Ok(c, out, nil)
}

// @Summary Free-agent probable starts ranked by start quality
// @Tags pitchers
// @Param start query string false "window start (YYYY-MM-DD, defaults to current week)"
// @Param end query string false "window end (YYYY-MM-DD)"
// @Success 200 {object} apiResponse
// @Router /api/pitchers/daily-streamers [get]
func (h *PitcherHandler) getDailyStreamers(c *gin.Context) {
	if h.Streaming == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	out, err := h.Streaming.GetDailyStreamCandidates(c.Request.Context(), dateQuery(c, "start"), dateQuery(c, "end"))
	if err != nil {
		writeServiceError(c, h.Logger, "daily streamers", err)
		return
	}
	Ok(c, out, nil)
}

// @Summary Probable starts ranked by no-run-first-inning likelihood
// @Tags pitchers
// @Param start query string false "window start (YYYY-MM-DD, defaults to current week)"
// @Param end query string false "window end (YYYY-MM-DD)"
// @Success 200 {object} apiResponse
// @Router /api/pitchers/nrfi [get]
func (h *PitcherHandler) getNRFI(c *gin.Context) {
	if h.Streaming == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	out, err := h.Streaming.GetNRFICandidates(c.Request.Context(), dateQuery(c, "start"), dateQuery(c, "end"))
	if err != nil {
		writeServiceError(c, h.Logger, "nrfi", err)
		return
	}
	Ok(c, out, nil)
}
