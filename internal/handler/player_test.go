package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/service"
)

// A service wired without its repository must surface a 500, not panic on the
// missing page.
func TestRankedRoutesSurviveUnconfiguredService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &PlayerHandler{Watchlists: &service.WatchlistService{}, Rankings: &service.RankingsService{}}
	h.Register(r)

	for _, path := range []string{
		"/api/players/watchlists/speed",
		"/api/players/rankings?kind=batters",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("%s: got %d, want 500", path, w.Code)
		}
	}
}
