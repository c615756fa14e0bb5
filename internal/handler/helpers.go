package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/ranking"
	"github.com/FangedParakeet/fantasy-baseball-assistant/internal/service"
)

func intQuery(c *gin.Context, key string, def int) int {
	if val := c.Query(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func boolQueryDefault(c *gin.Context, key string, def bool) bool {
	if val := c.Query(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return def
}

func strQuery(c *gin.Context, key string) string {
	return strings.TrimSpace(c.Query(key))
}

func uint64QueryPtr(c *gin.Context, key string) *uint64 {
	if val := strings.TrimSpace(c.Query(key)); val != "" {
		if i, err := strconv.ParseUint(val, 10, 64); err == nil {
			return &i
		}
	}
	return nil
}

func uint64Param(c *gin.Context, key string) uint64 {
	val, err := strconv.ParseUint(strings.TrimSpace(c.Param(key)), 10, 64)
	if err != nil {
		return 0
	}
	return val
}

// dateQuery parses an ISO date query param; the zero time means absent, which
// services resolve to the current Monday-Sunday week.
func dateQuery(c *gin.Context, key string) time.Time {
	if val := strings.TrimSpace(c.Query(key)); val != "" {
		if t, err := time.Parse("2006-01-02", val); err == nil {
			return t
		}
	}
	return time.Time{}
}

// writeServiceError maps service sentinels to client errors; anything else is
// an internal failure.
func writeServiceError(c *gin.Context, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrMissingParameter),
		errors.Is(err, service.ErrUnknownCategory),
		errors.Is(err, service.ErrUnknownSortKey),
		errors.Is(err, service.ErrUnknownPosition),
		errors.Is(err, service.ErrUnknownWindow):
		Error(c, http.StatusBadRequest, err.Error(), nil)
	default:
		if logger != nil {
			logger.Warn(op+" failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, err.Error(), nil)
	}
}

func paginationMeta(meta ranking.PageMeta) map[string]any {
	return map[string]any{
		"page":        meta.Page,
		"page_size":   meta.PageSize,
		"total":       meta.Total,
		"total_pages": meta.TotalPages,
		"has_next":    meta.HasNext,
	}
}
