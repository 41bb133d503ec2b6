package controllers

import (
	"net/http"
	"time"

	"fittrack/internal/middleware"
	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SleepController struct {
	repo     repository.SleepRepository
	notifier AchievementNotifier
	cache    SummaryInvalidator
}

func NewSleepController(repo repository.SleepRepository, notifier AchievementNotifier, cache SummaryInvalidator) *SleepController {
	return &SleepController{repo: repo, notifier: notifier, cache: cache}
}

type sleepRequest struct {
	HoursSlept   float64    `json:"hours_slept" binding:"required,gt=0"`
	SleepQuality string     `json:"sleep_quality" binding:"required,oneof=poor fair good excellent"`
	SleepDate    *time.Time `json:"sleep_date"`
}

// UpsertSleep godoc
// @Summary Record sleep for a date
// @Description Save the night's sleep; a second write for the same date updates the existing entry instead of duplicating it
// @Tags sleep
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sleep body sleepRequest true "Sleep data"
// @Success 200 {object} map[string]interface{} "Sleep logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to log sleep"
// @Router /sleep [put]
func (sc *SleepController) UpsertSleep(c *gin.Context) {
	userID := middleware.UserID(c)

	var req sleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	sleepDate := time.Now()
	if req.SleepDate != nil {
		sleepDate = *req.SleepDate
	}

	log := models.SleepLog{
		UserID:       userID,
		HoursSlept:   req.HoursSlept,
		SleepQuality: req.SleepQuality,
		SleepDate:    sleepDate,
	}

	if err := sc.repo.Upsert(&log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log sleep",
			"error":   err.Error(),
		})
		return
	}

	if sc.notifier != nil {
		sc.notifier.Enqueue(userID)
	}
	invalidateSummary(c, sc.cache, userID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Sleep logged successfully",
		"data":    log,
	})
}

// GetSleep godoc
// @Summary Get the sleep entry for a date
// @Description Retrieve the single sleep entry for the given date (default today); data is null when none exists
// @Tags sleep
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Sleep retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve sleep"
// @Router /sleep [get]
func (sc *SleepController) GetSleep(c *gin.Context) {
	userID := middleware.UserID(c)

	date, ok := parseDateParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "Date must be in YYYY-MM-DD format",
		})
		return
	}

	log, err := sc.repo.FindByUserIDAndDate(userID, date)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "No sleep logged for this date",
				"data":    nil,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve sleep",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Sleep retrieved successfully",
		"data":    log,
	})
}

// DeleteSleep godoc
// @Summary Delete the sleep entry for a date
// @Description Remove the sleep entry for the given date (default today)
// @Tags sleep
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{} "Sleep entry deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 404 {object} map[string]interface{} "Sleep entry not found"
// @Router /sleep [delete]
func (sc *SleepController) DeleteSleep(c *gin.Context) {
	userID := middleware.UserID(c)

	date, ok := parseDateParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "Date must be in YYYY-MM-DD format",
		})
		return
	}

	if err := sc.repo.Delete(userID, date); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Sleep entry not found",
				"error":   "No sleep entry exists for this date",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete sleep entry",
			"error":   err.Error(),
		})
		return
	}

	invalidateSummary(c, sc.cache, userID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Sleep entry deleted successfully",
		"data":    nil,
	})
}
