package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/service"
)

type PlayerHandler struct {
	Watchlists *service.WatchlistService
	Rankings   *service.RankingsService
	Players    *service.PlayerService
	Logger     *zap.Logger
}

func (h *PlayerHandler) Register(r *gin.Engine) {
	group := r.Group("/api/players")
	group.GET("/search", h.search)
	group.GET("/watchlists/:category", h.getWatchlist)
	group.GET("/rankings", h.getRankings)
}

// @Summary Search players by name
// @Tags players
// @Param q query string true "name fragment"
// @Param limit query int false "max results"
// @Success 200 {object} apiResponse
// @Router /api/players/search [get]
func (h *PlayerHandler) search(c *gin.Context) {
	if h.Players == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	players, err := h.Players.Search(c.Request.Context(), strQuery(c, "q"), intQuery(c, "limit", 0))
	if err != nil {
		writeServiceError(c, h.Logger, "player search", err)
		return
	}
	Ok(c, players, nil)
}

// @Summary Positional watchlist of gated free agents
// @Tags players
// @Param category path string true "speed|contact|power|starter|reliever"
// @Param days query int false "rolling window in days"
// @Param page query int false "1-based page"
// @Param position query string false "eligibility filter (C,1B,2B,3B,SS,OF,UTIL,SP,RP)"
// @Success 200 {object} apiResponse
// @Router /api/players/watchlists/{category} [get]
func (h *PlayerHandler) getWatchlist(c *gin.Context) {
	if h.Watchlists == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	page, err := h.Watchlists.GetWatchlist(c.Request.Context(), service.WatchlistParams{
		Category: c.Param("category"),
		SpanDays: intQuery(c, "days", 0),
		Page:     intQuery(c, "page", 1),
		Position: strQuery(c, "position"),
	})
	if err != nil {
		writeServiceError(c, h.Logger, "watchlist", err)
		return
	}
	Ok(c, page, paginationMeta(page.Meta))
}

// @Summary Composite rankings over the player pool
// @Tags players
// @Param kind query string true "batters|pitchers"
// @Param days query int false "rolling window in days"
// @Param page query int false "1-based page"
// @Param free_agents_only query bool false "restrict to free agents"
// @Param position query string false "eligibility filter"
// @Param sort query string false "percentile column override"
// @Param team_id query int false "owning fantasy team"
// @Success 200 {object} apiResponse
// @Router /api/players/rankings [get]
func (h *PlayerHandler) getRankings(c *gin.Context) {
	if h.Rankings == nil {
		Error(c, http.StatusInternalServerError, "service unavailable", nil)
		return
	}
	page, err := h.Rankings.GetRankings(c.Request.Context(), service.RankingsParams{
		Kind:          strQuery(c, "kind"),
		SpanDays:      intQuery(c, "days", 0),
		Page:          intQuery(c, "page", 1),
		FreeAgentOnly: boolQueryDefault(c, "free_agents_only", false),
		Position:      strQuery(c, "position"),
		SortKey:       strQuery(c, "sort"),
		TeamID:        uint64QueryPtr(c, "team_id"),
	})
	if err != nil {
		writeServiceError(c, h.Logger, "rankings", err)
		return
	}
	Ok(c, page, paginationMeta(page.Meta))
}
