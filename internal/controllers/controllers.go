package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
)

// AchievementNotifier triggers a background achievement evaluation pass for a
// user. Satisfied by services.AchievementWorker; write handlers call it after
// each successful insert.
type AchievementNotifier interface {
	Enqueue(userID uint)
}

// SummaryInvalidator drops the cached coach summary for a user. Satisfied by
// cache.RedisClient; write handlers call it so the next summary request sees
// the new log instead of a stale cache entry.
type SummaryInvalidator interface {
	InvalidateSummary(ctx context.Context, userID uint) error
}

// invalidateSummary is best-effort: a cache miss or redis outage must not fail
// the write that triggered it.
func invalidateSummary(c *gin.Context, cache SummaryInvalidator, userID uint) {
	if cache != nil {
		_ = cache.InvalidateSummary(c.Request.Context(), userID)
	}
}
